// Package joypad holds the bus-addressed joypad register. Button-state
// polling and interrupt-raising behavior are a Non-goal; this is storage
// only, so the I/O region stays fully addressable.
package joypad

// Registers is the joypad's single memory-mapped register at 0xFF00.
type Registers struct {
	P1 uint8
}

// Read returns P1's current value.
func (r *Registers) Read() uint8 { return r.P1 }

// Write stores a new P1 value.
func (r *Registers) Write(v uint8) { r.P1 = v }
