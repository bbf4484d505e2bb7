package cpu

// ldR8R8 implements the 0x40-0x7F block (minus 0x76, HALT): LD r8,r8,
// including the [HL] forms via slot 6.
func (m *Machine) ldR8R8(op uint8) error {
	dst, err := DecodeR8(m, false, (op>>3)&0x07)
	if err != nil {
		return err
	}
	src, err := DecodeR8(m, false, op&0x07)
	if err != nil {
		return err
	}
	v, err := src.Read(m)
	if err != nil {
		return err
	}
	return dst.Write(m, v)
}

// ldR8N8 implements LD r8,n8 for all eight destination slots.
func (m *Machine) ldR8N8(op uint8) error {
	dst, err := DecodeR8(m, false, (op>>3)&0x07)
	if err != nil {
		return err
	}
	src, err := DecodeR8(m, true, 0)
	if err != nil {
		return err
	}
	v, err := src.Read(m)
	if err != nil {
		return err
	}
	return dst.Write(m, v)
}

// ldhN8A implements LDH [n8],A: address is 0xFF00+n8.
func (m *Machine) ldhN8A() error {
	n, err := m.FetchByte()
	if err != nil {
		return err
	}
	return m.Write(0xFF00+uint16(n), m.Reg.A)
}

// ldhAN8 implements LDH A,[n8].
func (m *Machine) ldhAN8() error {
	n, err := m.FetchByte()
	if err != nil {
		return err
	}
	v, err := m.Read(0xFF00 + uint16(n))
	if err != nil {
		return err
	}
	m.Reg.A = v
	return nil
}

// ldhCA implements LDH [C],A: address is 0xFF00+C.
func (m *Machine) ldhCA() error {
	return m.Write(0xFF00+uint16(m.Reg.C), m.Reg.A)
}

// ldhAC implements LDH A,[C].
func (m *Machine) ldhAC() error {
	v, err := m.Read(0xFF00 + uint16(m.Reg.C))
	if err != nil {
		return err
	}
	m.Reg.A = v
	return nil
}

// ldN16A implements LD [n16],A.
func (m *Machine) ldN16A() error {
	addr, err := m.FetchWord()
	if err != nil {
		return err
	}
	return m.Write(addr, m.Reg.A)
}

// ldAN16 implements LD A,[n16].
func (m *Machine) ldAN16() error {
	addr, err := m.FetchWord()
	if err != nil {
		return err
	}
	v, err := m.Read(addr)
	if err != nil {
		return err
	}
	m.Reg.A = v
	return nil
}
