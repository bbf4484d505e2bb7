package cpu

import "gbcore/gberr"

// R8Kind distinguishes the three forms an R8 operand can take.
type R8Kind uint8

const (
	R8KindRegister R8Kind = iota
	R8KindIndirect        // [HL]
	R8KindImmediate       // N8, read-only
)

// R8 is a decoded (not yet accessed) 8-bit operand. Decoding is pure;
// Read/Write go through the register file or the bus depending on Kind.
type R8 struct {
	Kind R8Kind
	Slot R8Slot
	Imm  uint8
}

// DecodeR8 resolves the 3-bit r8 field. When isImmediate is set, it fetches
// the next byte from the instruction stream (consuming one bus access, which
// ticks the clock) and returns a read-only immediate operand.
func DecodeR8(m *Machine, isImmediate bool, field uint8) (R8, error) {
	if isImmediate {
		v, err := m.FetchByte()
		if err != nil {
			return R8{}, err
		}
		return R8{Kind: R8KindImmediate, Imm: v}, nil
	}
	slot := R8Slot(field)
	if slot == SlotHLIndirect {
		return R8{Kind: R8KindIndirect}, nil
	}
	if _, err := m.Reg.MatchR8(slot); err != nil {
		return R8{}, err
	}
	return R8{Kind: R8KindRegister, Slot: slot}, nil
}

// Read fetches the operand's current value.
func (o R8) Read(m *Machine) (uint8, error) {
	switch o.Kind {
	case R8KindImmediate:
		return o.Imm, nil
	case R8KindIndirect:
		return m.Read(m.Reg.HL())
	default:
		p, err := m.Reg.MatchR8(o.Slot)
		if err != nil {
			return 0, err
		}
		return *p, nil
	}
}

// Write stores a new value into the operand. Writing an immediate is a
// programming error; it never occurs given a well-formed opcode table.
func (o R8) Write(m *Machine, v uint8) error {
	switch o.Kind {
	case R8KindImmediate:
		return nil
	case R8KindIndirect:
		return m.Write(m.Reg.HL(), v)
	default:
		p, err := m.Reg.MatchR8(o.Slot)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

// R16Group names which of the three 2-bit-field groupings an R16 decode uses.
type R16Group uint8

const (
	GroupR16 R16Group = iota
	GroupR16Stk
	GroupR16Mem
)

// R16Name identifies one of the five 16-bit register views, plus the two
// HL-with-side-effect variants used by the R16Mem grouping.
type R16Name uint8

const (
	R16BC R16Name = iota
	R16DE
	R16HL
	R16SP
	R16AF
	R16HLInc
	R16HLDec
)

// DecodeR16 selects the register pair named by the 2-bit field under the
// given grouping.
func DecodeR16(field uint8, group R16Group) (R16Name, error) {
	switch group {
	case GroupR16:
		switch field {
		case 0:
			return R16BC, nil
		case 1:
			return R16DE, nil
		case 2:
			return R16HL, nil
		case 3:
			return R16SP, nil
		}
	case GroupR16Stk:
		switch field {
		case 0:
			return R16BC, nil
		case 1:
			return R16DE, nil
		case 2:
			return R16HL, nil
		case 3:
			return R16AF, nil
		}
	case GroupR16Mem:
		switch field {
		case 0:
			return R16BC, nil
		case 1:
			return R16DE, nil
		case 2:
			return R16HLInc, nil
		case 3:
			return R16HLDec, nil
		}
	}
	return 0, gberr.InvalidR16Operand(field)
}

// Read returns the current 16-bit value of the named pair.
func (n R16Name) Read(r *Registers) uint16 {
	switch n {
	case R16BC:
		return r.BC()
	case R16DE:
		return r.DE()
	case R16HL, R16HLInc, R16HLDec:
		return r.HL()
	case R16SP:
		return r.SP
	case R16AF:
		return r.AF()
	}
	return 0
}

// Write stores a 16-bit value into the named pair.
func (n R16Name) Write(r *Registers, v uint16) {
	switch n {
	case R16BC:
		r.SetBC(v)
	case R16DE:
		r.SetDE(v)
	case R16HL, R16HLInc, R16HLDec:
		r.SetHL(v)
	case R16SP:
		r.SP = v
	case R16AF:
		r.SetAF(v)
	}
}

// ApplyMemEffect applies HL's post-increment/post-decrement for the R16Mem
// grouping. It must be called after the memory access the operand was
// decoded for, not before — the mutation is a side effect of use, not of
// decode.
func (n R16Name) ApplyMemEffect(r *Registers) {
	switch n {
	case R16HLInc:
		r.SetHL(r.HL() + 1)
	case R16HLDec:
		r.SetHL(r.HL() - 1)
	}
}
