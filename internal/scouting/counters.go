package scouting

// CounterPanel holds the tallies for the match currently being scouted.
// It is transient: its state is copied into a record at save time and
// never persisted on its own.
type CounterPanel struct {
	counters Counters
}

// NewCounterPanel returns a panel with every slot at zero.
func NewCounterPanel() *CounterPanel {
	return &CounterPanel{counters: NewCounters()}
}

// Increment bumps the slot by one and returns the new value. Unknown
// slot names start counting from zero.
func (p *CounterPanel) Increment(slot string) int {
	p.counters[slot] = p.counters[slot] + 1
	return p.counters[slot]
}

// Decrement lowers the slot by one, clamped at zero, and returns the
// new value.
func (p *CounterPanel) Decrement(slot string) int {
	v := p.counters[slot] - 1
	if v < 0 {
		v = 0
	}
	p.counters[slot] = v
	return v
}

// Get returns the current value of the slot.
func (p *CounterPanel) Get(slot string) int {
	return p.counters[slot]
}

// Reset returns every slot to zero. Slot names accumulated from unknown
// increments stay in the map, zeroed, rather than being removed.
func (p *CounterPanel) Reset() {
	for slot := range p.counters {
		p.counters[slot] = 0
	}
}

// Snapshot returns a copy of the current tallies for record capture.
func (p *CounterPanel) Snapshot() Counters {
	return p.counters.Clone()
}
