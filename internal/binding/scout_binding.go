package binding

import (
	"context"
	"fmt"
	"strings"

	"reefscout/internal/scouting"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ScoutBinding provides frontend bindings for the scouting tab: the
// live counter panel and record saving.
type ScoutBinding struct {
	ctx     context.Context
	emitter EventEmitter
	panel   *scouting.CounterPanel
	ledger  *scouting.Ledger
}

// NewScoutBinding creates a new ScoutBinding instance.
func NewScoutBinding(panel *scouting.CounterPanel, ledger *scouting.Ledger) *ScoutBinding {
	return &ScoutBinding{panel: panel, ledger: ledger}
}

// SetContext sets the Wails runtime context.
func (s *ScoutBinding) SetContext(ctx context.Context) {
	s.ctx = ctx
	s.emitter = &WailsEventEmitter{ctx: ctx}
}

// SetEventEmitter injects a custom emitter, for tests.
func (s *ScoutBinding) SetEventEmitter(emitter EventEmitter) {
	s.emitter = emitter
}

// Increment bumps a counter slot and returns its new value.
func (s *ScoutBinding) Increment(slot string) int {
	return s.panel.Increment(slot)
}

// Decrement lowers a counter slot (floor zero) and returns its new
// value.
func (s *ScoutBinding) Decrement(slot string) int {
	return s.panel.Decrement(slot)
}

// Counters returns the current counter panel state.
func (s *ScoutBinding) Counters() scouting.Counters {
	return s.panel.Snapshot()
}

// ResetCounters zeroes the panel.
func (s *ScoutBinding) ResetCounters() scouting.Counters {
	s.panel.Reset()
	return s.panel.Snapshot()
}

// digitsOnly strips everything but 0-9, the same normalization the
// match input applies while typing.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// SaveRecord commits the draft plus the current counter panel as a new
// ledger record. On success the panel is reset for the next match and a
// record-saved event carries a motivational quote to the frontend; on
// validation failure nothing changes and the form keeps its fields.
func (s *ScoutBinding) SaveRecord(draft scouting.Draft) (*scouting.Record, error) {
	draft.Match = digitsOnly(draft.Match)
	draft.Counters = s.panel.Snapshot()

	rec, err := s.ledger.Save(draft)
	if err != nil {
		runtime.LogWarning(s.ctx, fmt.Sprintf("Record rejected: %v", err))
		return nil, err
	}

	s.panel.Reset()
	runtime.LogInfo(s.ctx, fmt.Sprintf("Record saved: team %s match %s (ID: %s)", rec.Team, rec.Match, rec.ID))

	if s.emitter != nil {
		s.emitter.Emit(EventRecordSaved, map[string]any{
			"id":    rec.ID,
			"team":  rec.Team,
			"match": rec.Match,
			"quote": scouting.RandomQuote(),
		})
	}

	return rec, nil
}
