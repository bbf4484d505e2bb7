package cpu

import "gbcore/bits"

func rotateLeftNoCarry(n uint8) (uint8, bool)         { return bits.RotateLeft(n, false, false) }
func rotateLeftThroughCarry(n uint8, c bool) (uint8, bool)  { return bits.RotateLeft(n, c, true) }
func rotateRightNoCarry(n uint8) (uint8, bool)        { return bits.RotateRight(n, false, false) }
func rotateRightThroughCarry(n uint8, c bool) (uint8, bool) { return bits.RotateRight(n, c, true) }

// executeCB decodes and runs the 0xCB xx secondary table.
func (m *Machine) executeCB(sub uint8) error {
	field := sub & 0x07
	bitIndex := (sub >> 3) & 0x07

	switch {
	case sub < 0x08:
		return m.cbRotateShift(field, rlcOp)
	case sub < 0x10:
		return m.cbRotateShift(field, rrcOp)
	case sub < 0x18:
		return m.cbRotateShift(field, rlOp)
	case sub < 0x20:
		return m.cbRotateShift(field, rrOp)
	case sub < 0x28:
		return m.cbRotateShift(field, slaOp)
	case sub < 0x30:
		return m.cbRotateShift(field, sraOp)
	case sub < 0x38:
		return m.cbRotateShift(field, swapOp)
	case sub < 0x40:
		return m.cbRotateShift(field, srlOp)
	case sub < 0x80:
		return m.bit(bitIndex, field)
	case sub < 0xC0:
		return m.res(bitIndex, field)
	default:
		return m.set(bitIndex, field)
	}
}

type cbOp uint8

const (
	rlcOp cbOp = iota
	rrcOp
	rlOp
	rrOp
	slaOp
	sraOp
	swapOp
	srlOp
)

// cbRotateShift applies one of the eight rotate/shift/swap operations to the
// r8 operand named by field, reading and writing through Read/Write so the
// [HL] case naturally pays its two bus-access ticks.
func (m *Machine) cbRotateShift(field uint8, op cbOp) error {
	operand, err := DecodeR8(m, false, field)
	if err != nil {
		return err
	}
	v, err := operand.Read(m)
	if err != nil {
		return err
	}

	var result uint8
	var carry bool
	switch op {
	case rlcOp:
		result, carry = rotateLeftNoCarry(v)
	case rrcOp:
		result, carry = rotateRightNoCarry(v)
	case rlOp:
		result, carry = rotateLeftThroughCarry(v, m.Reg.ReadFlag(FlagC))
	case rrOp:
		result, carry = rotateRightThroughCarry(v, m.Reg.ReadFlag(FlagC))
	case slaOp:
		carry = bits.IsSet(v, 7)
		result = v << 1
	case sraOp:
		carry = bits.IsSet(v, 0)
		result = (v >> 1) | (v & 0x80)
	case swapOp:
		result = (v << 4) | (v >> 4)
		carry = false
	case srlOp:
		carry = bits.IsSet(v, 0)
		result = v >> 1
	}

	if op == swapOp {
		m.Reg.SetAllFlags(boolTri(result == 0), Clear, Clear, Clear)
	} else {
		m.Reg.SetAllFlags(boolTri(result == 0), Clear, Clear, boolTri(carry))
	}
	return operand.Write(m, result)
}

// bit implements BIT u3,r8: reads only, never writes back.
func (m *Machine) bit(index, field uint8) error {
	operand, err := DecodeR8(m, false, field)
	if err != nil {
		return err
	}
	v, err := operand.Read(m)
	if err != nil {
		return err
	}
	zero := !bits.IsSet(v, index)
	m.Reg.SetAllFlags(boolTri(zero), Clear, Set, Unchanged)
	return nil
}

// res implements RES u3,r8.
func (m *Machine) res(index, field uint8) error {
	operand, err := DecodeR8(m, false, field)
	if err != nil {
		return err
	}
	v, err := operand.Read(m)
	if err != nil {
		return err
	}
	return operand.Write(m, bits.SetBit(v, index, false))
}

// set implements SET u3,r8.
func (m *Machine) set(index, field uint8) error {
	operand, err := DecodeR8(m, false, field)
	if err != nil {
		return err
	}
	v, err := operand.Read(m)
	if err != nil {
		return err
	}
	return operand.Write(m, bits.SetBit(v, index, true))
}
