// Package cpu implements the Sharp SM83 register file, operand decoders,
// instruction handlers, and dispatch tables.
package cpu

import (
	"gbcore/bits"
	"gbcore/gberr"
)

// Flag names the bit position of each flag within F's high nibble.
type Flag uint8

const (
	FlagC Flag = 4
	FlagH Flag = 5
	FlagN Flag = 6
	FlagZ Flag = 7
)

// TriState is a flag-write value accepted by SetAllFlags: Clear, Set, or
// Unchanged (preserve the current value).
type TriState uint8

const (
	Clear TriState = iota
	Set
	Unchanged
)

// Registers holds the eight 8-bit SM83 registers plus SP and PC.
type Registers struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// NewRegisters returns the register file in its post-boot DMG state.
func NewRegisters() *Registers {
	return &Registers{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE, PC: 0x0100,
	}
}

func (r *Registers) AF() uint16 { return bits.ReadU16(r.F, r.A) }
func (r *Registers) BC() uint16 { return bits.ReadU16(r.C, r.B) }
func (r *Registers) DE() uint16 { return bits.ReadU16(r.E, r.D) }
func (r *Registers) HL() uint16 { return bits.ReadU16(r.L, r.H) }

func (r *Registers) SetAF(v uint16) {
	r.F, r.A = bits.WriteU16(v)
	r.F &= 0xF0
}
func (r *Registers) SetBC(v uint16) { r.C, r.B = bits.WriteU16(v) }
func (r *Registers) SetDE(v uint16) { r.E, r.D = bits.WriteU16(v) }
func (r *Registers) SetHL(v uint16) { r.L, r.H = bits.WriteU16(v) }

// ReadFlag reports whether the named flag bit is set in F.
func (r *Registers) ReadFlag(f Flag) bool {
	return bits.IsSet(r.F, uint8(f))
}

// SetFlag writes a single flag bit, always forcing F's low nibble to zero.
func (r *Registers) SetFlag(f Flag, v bool) {
	r.F = bits.SetBit(r.F, uint8(f), v)
	r.F &= 0xF0
}

// SetAllFlags replaces Z, N, H, C atomically. Each argument is Clear, Set, or
// Unchanged (preserve the current value of that flag).
func (r *Registers) SetAllFlags(z, n, h, c TriState) {
	r.F = triApply(r.F, FlagZ, z)
	r.F = triApply(r.F, FlagN, n)
	r.F = triApply(r.F, FlagH, h)
	r.F = triApply(r.F, FlagC, c)
	r.F &= 0xF0
}

func triApply(f uint8, bit Flag, state TriState) uint8 {
	switch state {
	case Clear:
		return bits.SetBit(f, uint8(bit), false)
	case Set:
		return bits.SetBit(f, uint8(bit), true)
	default:
		return f
	}
}

// R8Slot names the eight register-file slots addressed by a 3-bit field.
// Slot 6 is [HL] and is never resolved here.
type R8Slot uint8

const (
	SlotB R8Slot = iota
	SlotC
	SlotD
	SlotE
	SlotH
	SlotL
	SlotHLIndirect
	SlotA
)

// MatchR8 returns a pointer to the named register slot, failing
// gberr.InvalidR8Operand for slot 6 ([HL], which must be resolved through
// the bus by the caller).
func (r *Registers) MatchR8(slot R8Slot) (*uint8, error) {
	switch slot {
	case SlotB:
		return &r.B, nil
	case SlotC:
		return &r.C, nil
	case SlotD:
		return &r.D, nil
	case SlotE:
		return &r.E, nil
	case SlotH:
		return &r.H, nil
	case SlotL:
		return &r.L, nil
	case SlotA:
		return &r.A, nil
	default:
		return nil, gberr.InvalidR8Operand(slot)
	}
}

// Condition names one of the four branch condition codes.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

// MatchCondition evaluates one of the four condition codes against the
// current flags.
func (r *Registers) MatchCondition(cond Condition) (bool, error) {
	switch cond {
	case CondNZ:
		return !r.ReadFlag(FlagZ), nil
	case CondZ:
		return r.ReadFlag(FlagZ), nil
	case CondNC:
		return !r.ReadFlag(FlagC), nil
	case CondC:
		return r.ReadFlag(FlagC), nil
	default:
		return false, gberr.InvalidCondition(cond)
	}
}
