package cpu

// ldR16N16 implements LD r16,n16 for BC/DE/HL/SP.
func (m *Machine) ldR16N16(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16)
	if err != nil {
		return err
	}
	v, err := m.FetchWord()
	if err != nil {
		return err
	}
	name.Write(m.Reg, v)
	return nil
}

// ldR16MemA implements LD [r16mem],A, applying HL's post-inc/dec after the
// write completes.
func (m *Machine) ldR16MemA(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16Mem)
	if err != nil {
		return err
	}
	addr := name.Read(m.Reg)
	if err := m.Write(addr, m.Reg.A); err != nil {
		return err
	}
	name.ApplyMemEffect(m.Reg)
	return nil
}

// ldAR16Mem implements LD A,[r16mem], the read-side mirror of ldR16MemA.
func (m *Machine) ldAR16Mem(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16Mem)
	if err != nil {
		return err
	}
	addr := name.Read(m.Reg)
	v, err := m.Read(addr)
	if err != nil {
		return err
	}
	m.Reg.A = v
	name.ApplyMemEffect(m.Reg)
	return nil
}

// ldN16SP implements LD [n16],SP: a two-byte little-endian store.
func (m *Machine) ldN16SP() error {
	addr, err := m.FetchWord()
	if err != nil {
		return err
	}
	lo := uint8(m.Reg.SP & 0xFF)
	hi := uint8(m.Reg.SP >> 8)
	if err := m.Write(addr, lo); err != nil {
		return err
	}
	return m.Write(addr+1, hi)
}

// ldSPHL implements LD SP,HL, which costs one internal tick beyond the
// register move.
func (m *Machine) ldSPHL() error {
	m.Reg.SP = m.Reg.HL()
	m.InternalTick()
	return nil
}

// spOffsetFlags computes the H/C flags shared by LD HL,SP+e8 and ADD SP,e8:
// both carries are evaluated on the unsigned low byte, never on the signed
// 16-bit sum.
func spOffsetFlags(sp uint16, e int16) (h, c bool) {
	lowSP := sp & 0xFF
	lowE := uint16(uint8(e))
	sum := lowSP + lowE
	c = sum > 0xFF
	h = (lowSP&0xF)+(lowE&0xF) > 0xF
	return h, c
}

// ldHLSPE8 implements LD HL,SP+e8.
func (m *Machine) ldHLSPE8() error {
	e, err := m.FetchSigned()
	if err != nil {
		return err
	}
	h, c := spOffsetFlags(m.Reg.SP, e)
	m.Reg.SetHL(uint16(int32(m.Reg.SP) + int32(e)))
	m.Reg.SetAllFlags(Clear, Clear, boolTri(h), boolTri(c))
	m.InternalTick()
	return nil
}

// addSPE8 implements ADD SP,e8.
func (m *Machine) addSPE8() error {
	e, err := m.FetchSigned()
	if err != nil {
		return err
	}
	h, c := spOffsetFlags(m.Reg.SP, e)
	m.Reg.SP = uint16(int32(m.Reg.SP) + int32(e))
	m.Reg.SetAllFlags(Clear, Clear, boolTri(h), boolTri(c))
	m.InternalTick()
	m.InternalTick()
	return nil
}

func boolTri(b bool) TriState {
	if b {
		return Set
	}
	return Clear
}

// push implements PUSH r16stk: one internal tick, then msb then lsb, each
// preceded by a SP decrement.
func (m *Machine) push(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16Stk)
	if err != nil {
		return err
	}
	v := name.Read(m.Reg)
	m.InternalTick()
	m.Reg.SP--
	if err := m.Write(m.Reg.SP, uint8(v>>8)); err != nil {
		return err
	}
	m.Reg.SP--
	return m.Write(m.Reg.SP, uint8(v&0xFF))
}

// pop implements POP r16stk: lsb then msb, each followed by a SP increment.
// POP AF zeroes F's low nibble.
func (m *Machine) pop(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16Stk)
	if err != nil {
		return err
	}
	lo, err := m.Read(m.Reg.SP)
	if err != nil {
		return err
	}
	m.Reg.SP++
	hi, err := m.Read(m.Reg.SP)
	if err != nil {
		return err
	}
	m.Reg.SP++
	name.Write(m.Reg, uint16(hi)<<8|uint16(lo))
	if name == R16AF {
		m.Reg.F &= 0xF0
	}
	return nil
}
