package cpu

// incR16 implements INC r16: no flags, one internal tick beyond the
// register write.
func (m *Machine) incR16(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16)
	if err != nil {
		return err
	}
	name.Write(m.Reg, name.Read(m.Reg)+1)
	m.InternalTick()
	return nil
}

// decR16 implements DEC r16: no flags, one internal tick.
func (m *Machine) decR16(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16)
	if err != nil {
		return err
	}
	name.Write(m.Reg, name.Read(m.Reg)-1)
	m.InternalTick()
	return nil
}

// addHLR16 implements ADD HL,r16: Z preserved, N=0, H from bit-11 carry,
// C from bit-15 carry, one internal tick.
func (m *Machine) addHLR16(op uint8) error {
	name, err := DecodeR16((op>>4)&0x03, GroupR16)
	if err != nil {
		return err
	}
	hl := m.Reg.HL()
	x := name.Read(m.Reg)
	sum := uint32(hl) + uint32(x)
	h := (hl&0x0FFF)+(x&0x0FFF) > 0x0FFF
	c := sum > 0xFFFF
	m.Reg.SetHL(uint16(sum))
	m.Reg.SetAllFlags(Unchanged, Clear, boolTri(h), boolTri(c))
	m.InternalTick()
	return nil
}
