package scouting

import (
	"encoding/json"
	"fmt"
	"strings"

	"reefscout/internal/store"
)

// Registry is the ordered collection of teams available on the scouting
// form. Team numbers are unique within it. Every mutation is mirrored
// to the slot store; a fresh registry rehydrates from the same slot.
type Registry struct {
	store store.Store
	teams []Team
}

// NewRegistry builds a registry rehydrated from the store. A missing or
// unreadable snapshot yields an empty registry.
func NewRegistry(st store.Store) *Registry {
	r := &Registry{store: st}
	if raw, ok := st.Read(store.KeyTeams); ok {
		var teams []Team
		if err := json.Unmarshal([]byte(raw), &teams); err == nil {
			r.teams = teams
		}
	}
	return r
}

// Teams returns a copy of the registry contents in insertion order.
func (r *Registry) Teams() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// Len returns the number of registered teams.
func (r *Registry) Len() int {
	return len(r.teams)
}

// Add appends a team. It reports whether the team was added: blank
// name or number (after trimming) and duplicate numbers are silent
// no-ops, leaving the registry unchanged.
func (r *Registry) Add(name, number string) bool {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" || number == "" {
		return false
	}
	for _, t := range r.teams {
		if t.Number == number {
			return false
		}
	}

	r.teams = append(r.teams, Team{Name: name, Number: number})
	r.mirror()
	return true
}

// DeleteAt removes the team at the given position. Out-of-bounds
// indexes are a no-op.
func (r *Registry) DeleteAt(index int) {
	if index < 0 || index >= len(r.teams) {
		return
	}
	r.teams = append(r.teams[:index], r.teams[index+1:]...)
	r.mirror()
}

// importFile is the accepted wrapper shape for a team import.
type importFile struct {
	Teams []Team `json:"teams"`
}

// ReplaceAllFromJSON replaces the whole registry from an import file.
// Two shapes are accepted: a bare JSON array of teams, or an object
// with a "teams" array. Entries missing a name or a number are dropped;
// the rest replace the current contents wholesale, without merging or
// deduplication. Anything else returns ErrBadImport with the registry
// untouched.
func (r *Registry) ReplaceAllFromJSON(data []byte) error {
	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil || teams == nil {
		var wrapper importFile
		if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.Teams == nil {
			return ErrBadImport
		}
		teams = wrapper.Teams
	}

	kept := make([]Team, 0, len(teams))
	for _, t := range teams {
		if t.Name == "" || t.Number == "" {
			continue
		}
		kept = append(kept, t)
	}

	r.teams = kept
	r.mirror()
	return nil
}

// ExportJSON renders the registry in the bare-array import shape, so an
// exported file can be imported back unchanged.
func (r *Registry) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.teams, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode teams: %w", err)
	}
	return data, nil
}

func (r *Registry) mirror() {
	teams := r.teams
	if teams == nil {
		teams = []Team{}
	}
	data, err := json.Marshal(teams)
	if err != nil {
		return
	}
	r.store.Write(store.KeyTeams, string(data))
}
