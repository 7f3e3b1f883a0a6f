package scouting

import (
	"reefscout/internal/store"
)

// DefaultDeleteCode is the code in effect before anyone rotates it.
const DefaultDeleteCode = "1234"

const minCodeLength = 3

// Gate holds the shared delete code that guards bulk-clearing the
// ledger. It is stateless between calls apart from the stored code.
type Gate struct {
	store store.Store
	code  string
}

// NewGate builds a gate rehydrated from the store, seeding the default
// code on first use.
func NewGate(st store.Store) *Gate {
	g := &Gate{store: st, code: DefaultDeleteCode}
	if code, ok := st.Read(store.KeyDeleteCode); ok && code != "" {
		g.code = code
	} else {
		st.Write(store.KeyDeleteCode, g.code)
	}
	return g
}

// Verify reports whether the candidate matches the current code
// exactly.
func (g *Gate) Verify(candidate string) bool {
	return candidate == g.code
}

// Rotate replaces the code. The old code must verify (ErrAuth
// otherwise) and the new code must be at least three characters
// (ValidationError otherwise); on failure the current code stays in
// effect.
func (g *Gate) Rotate(oldCandidate, newCode string) error {
	if !g.Verify(oldCandidate) {
		return ErrAuth
	}
	if len(newCode) < minCodeLength {
		return &ValidationError{Field: "code", Reason: "must be at least 3 characters"}
	}

	g.code = newCode
	g.store.Write(store.KeyDeleteCode, g.code)
	return nil
}
