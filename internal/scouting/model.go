package scouting

// Team is one entry in the team registry. Number is the identity;
// registry entries are unique by it.
type Team struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Alliance colors a record can be scored under.
const (
	ColorBlue = "blue"
	ColorRed  = "red"
)

// Endgame actions selectable on the scouting form. The empty string
// (nothing selected) is also valid on a saved record.
var Actions = []string{"Parked", "Deep", "Shallow", "None"}

// Counter slot names, one per scoring action per match phase.
const (
	SlotAutoL1          = "auto-l1"
	SlotAutoL2          = "auto-l2"
	SlotAutoL3          = "auto-l3"
	SlotAutoL4          = "auto-l4"
	SlotAutoNet         = "auto-net"
	SlotAutoProcessor   = "auto-processor"
	SlotTeleopL1        = "teleop-l1"
	SlotTeleopL2        = "teleop-l2"
	SlotTeleopL3        = "teleop-l3"
	SlotTeleopL4        = "teleop-l4"
	SlotTeleopNet       = "teleop-net"
	SlotTeleopProcessor = "teleop-processor"
)

// CounterSlots lists every known slot in CSV column order.
var CounterSlots = []string{
	SlotAutoL1, SlotAutoL2, SlotAutoL3, SlotAutoL4,
	SlotAutoNet, SlotAutoProcessor,
	SlotTeleopL1, SlotTeleopL2, SlotTeleopL3, SlotTeleopL4,
	SlotTeleopNet, SlotTeleopProcessor,
}

// Counters maps slot names to non-negative tallies.
type Counters map[string]int

// NewCounters returns the canonical zero state: every known slot at 0.
func NewCounters() Counters {
	c := make(Counters, len(CounterSlots))
	for _, slot := range CounterSlots {
		c[slot] = 0
	}
	return c
}

// Clone returns an independent copy.
func (c Counters) Clone() Counters {
	out := make(Counters, len(c))
	for slot, v := range c {
		out[slot] = v
	}
	return out
}

// Record is one saved scouting result. Records are immutable once
// created; the ledger only ever appends them or clears everything.
type Record struct {
	ID             string   `json:"id"`
	Team           string   `json:"team"`
	Match          string   `json:"match"`
	Color          string   `json:"color"`
	Counters       Counters `json:"counters"`
	MovedFromStart bool     `json:"movedFromStart"`
	Defense        bool     `json:"defense"`
	Action         string   `json:"action"`
	Notes          string   `json:"notes"`
	Timestamp      string   `json:"timestamp"`
}

// Draft carries the in-progress form inputs for a save. The team field
// holds a team number, copied into the record as a plain string; no
// referential link back to the registry is kept.
type Draft struct {
	Team           string   `json:"team"`
	Match          string   `json:"match"`
	Color          string   `json:"color"`
	Counters       Counters `json:"counters"`
	MovedFromStart bool     `json:"movedFromStart"`
	Defense        bool     `json:"defense"`
	Action         string   `json:"action"`
	Notes          string   `json:"notes"`
}
