package cpu

// Clock is a monotonically increasing T-cycle counter. It has no notion of
// the PPU itself; Machine drives the PPU bridge on every tick so the clock
// stays a pure counter, testable in isolation.
type Clock struct {
	TCycles uint64
}

// Tick advances the counter by one M-cycle's worth of T-cycles.
func (c *Clock) Tick() {
	c.TCycles += 4
}
