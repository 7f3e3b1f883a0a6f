package scouting

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"reefscout/internal/store"
)

// Ledger is the append-only sequence of saved scouting records, in save
// order. Records are immutable; the only removal is ClearAll. Mutations
// mirror to the slot store, and a fresh ledger rehydrates from it.
type Ledger struct {
	store   store.Store
	records []Record
	now     func() time.Time
}

// NewLedger builds a ledger rehydrated from the store. A missing or
// unreadable snapshot yields an empty ledger.
func NewLedger(st store.Store) *Ledger {
	l := &Ledger{store: st, now: time.Now}
	if raw, ok := st.Read(store.KeyRecords); ok {
		var records []Record
		if err := json.Unmarshal([]byte(raw), &records); err == nil {
			l.records = records
		}
	}
	return l
}

// SetClock overrides the timestamp source, for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Save validates the draft and appends an immutable record built from
// it. Empty team or match returns a ValidationError and appends
// nothing; the caller keeps the draft for correction. On success the
// caller is expected to reset the counter panel and the form fields.
func (l *Ledger) Save(draft Draft) (*Record, error) {
	if draft.Team == "" {
		return nil, &ValidationError{Field: "team", Reason: "no team selected"}
	}
	if draft.Match == "" {
		return nil, &ValidationError{Field: "match", Reason: "no match number"}
	}

	counters := draft.Counters
	if counters == nil {
		counters = NewCounters()
	}

	rec := Record{
		ID:             uuid.New().String(),
		Team:           draft.Team,
		Match:          draft.Match,
		Color:          draft.Color,
		Counters:       counters.Clone(),
		MovedFromStart: draft.MovedFromStart,
		Defense:        draft.Defense,
		Action:         draft.Action,
		Notes:          draft.Notes,
		Timestamp:      l.now().UTC().Format(time.RFC3339),
	}

	l.records = append(l.records, rec)
	l.mirror()
	return &rec, nil
}

// ClearAll empties the ledger. Authorization is the caller's problem:
// the delete-code gate must already have been passed.
func (l *Ledger) ClearAll() {
	l.records = nil
	l.mirror()
}

// Records returns a copy of the full ledger in insertion order.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of saved records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// FilterByTeam returns all records for the given team number, in
// insertion order.
func (l *Ledger) FilterByTeam(number string) []Record {
	var out []Record
	for _, rec := range l.records {
		if rec.Team == number {
			out = append(out, rec)
		}
	}
	return out
}

// RecentN returns the last n records in insertion order (oldest of the
// n first). Callers wanting most-recent-first reverse for display.
func (l *Ledger) RecentN(n int) []Record {
	if n <= 0 {
		return nil
	}
	start := len(l.records) - n
	if start < 0 {
		start = 0
	}
	out := make([]Record, len(l.records)-start)
	copy(out, l.records[start:])
	return out
}

// Teams returns the distinct team numbers present in the ledger, in
// first-seen order. Numbers may reference teams no longer registered.
func (l *Ledger) Teams() []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range l.records {
		if !seen[rec.Team] {
			seen[rec.Team] = true
			out = append(out, rec.Team)
		}
	}
	return out
}

// AverageFor returns the arithmetic mean of a counter slot across the
// given records. The result is NaN for an empty set; callers guard.
func AverageFor(records []Record, slot string) float64 {
	sum := 0
	for _, rec := range records {
		sum += rec.Counters[slot]
	}
	return float64(sum) / float64(len(records))
}

// TeamSummary is the per-team performance panel on the data tab.
type TeamSummary struct {
	Team        string   `json:"team"`
	Matches     int      `json:"matches"`
	AvgAutoL1   float64  `json:"avgAutoL1"`
	AvgTeleopL1 float64  `json:"avgTeleopL1"`
	Recent      []Record `json:"recent"`
}

// Summary aggregates the ledger for one team: match count, auto/teleop
// L1 averages, and the last three matches. A team with no records gets
// a zero summary rather than NaN averages.
func (l *Ledger) Summary(number string) TeamSummary {
	records := l.FilterByTeam(number)
	s := TeamSummary{Team: number, Matches: len(records)}
	if len(records) == 0 {
		return s
	}

	s.AvgAutoL1 = AverageFor(records, SlotAutoL1)
	s.AvgTeleopL1 = AverageFor(records, SlotTeleopL1)

	recent := records
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	s.Recent = recent
	return s
}

func (l *Ledger) mirror() {
	records := l.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	l.store.Write(store.KeyRecords, string(data))
}
