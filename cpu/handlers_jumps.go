package cpu

// branchTaken evaluates whether a conditional control-flow instruction
// should branch: always true when unconditional, otherwise the condition
// code's current truth value.
func (m *Machine) branchTaken(unconditional bool, cond Condition) (bool, error) {
	if unconditional {
		return true, nil
	}
	return m.Reg.MatchCondition(cond)
}

// jp implements JP n16 / JP cc,n16.
func (m *Machine) jp(unconditional bool, cond Condition) error {
	target, err := m.FetchWord()
	if err != nil {
		return err
	}
	taken, err := m.branchTaken(unconditional, cond)
	if err != nil {
		return err
	}
	if taken {
		m.Reg.PC = target
		m.InternalTick()
	}
	return nil
}

// jpHL implements JP HL: PC takes HL's value directly, with no bus access
// and no internal tick.
func (m *Machine) jpHL() error {
	m.Reg.PC = m.Reg.HL()
	return nil
}

// jr implements JR e8 / JR cc,e8.
func (m *Machine) jr(unconditional bool, cond Condition) error {
	offset, err := m.FetchSigned()
	if err != nil {
		return err
	}
	taken, err := m.branchTaken(unconditional, cond)
	if err != nil {
		return err
	}
	if taken {
		m.Reg.PC = uint16(int32(m.Reg.PC) + int32(offset))
		m.InternalTick()
	}
	return nil
}

// call implements CALL n16 / CALL cc,n16. An untaken conditional call only
// pays for the target fetch.
func (m *Machine) call(unconditional bool, cond Condition) error {
	target, err := m.FetchWord()
	if err != nil {
		return err
	}
	taken, err := m.branchTaken(unconditional, cond)
	if err != nil {
		return err
	}
	if !taken {
		return nil
	}
	return m.pushPC(target)
}

// pushPC pushes the current PC onto the stack, assigns PC to target, then
// ticks once — the taken tail of CALL.
func (m *Machine) pushPC(target uint16) error {
	m.Reg.SP--
	if err := m.Write(m.Reg.SP, uint8(m.Reg.PC>>8)); err != nil {
		return err
	}
	m.Reg.SP--
	if err := m.Write(m.Reg.SP, uint8(m.Reg.PC&0xFF)); err != nil {
		return err
	}
	m.Reg.PC = target
	m.InternalTick()
	return nil
}

// ret implements RET / RET cc. Only the conditional form ticks once before
// evaluating its condition; every taken return then pays popPC's internal
// tick. Unlike the source this is grounded on, RET and RETI never evaluate
// a condition.
func (m *Machine) ret(unconditional bool, cond Condition) error {
	if !unconditional {
		m.InternalTick()
		taken, err := m.Reg.MatchCondition(cond)
		if err != nil {
			return err
		}
		if !taken {
			return nil
		}
	}
	return m.popPC()
}

// reti implements RETI: pops PC like RET and sets IME immediately.
func (m *Machine) reti() error {
	if err := m.popPC(); err != nil {
		return err
	}
	m.IME = true
	return nil
}

func (m *Machine) popPC() error {
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
	m.InternalTick()
	m.Reg.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

// rst implements RST vec: tick once, push the return address, jump to
// 8*vec where vec is bits 3..5 of the opcode. Unlike CALL, the single tick
// precedes the push and there is no trailing tick after it.
func (m *Machine) rst(op uint8) error {
	vec := (op >> 3) & 0x07
	m.InternalTick()
	m.Reg.SP--
	if err := m.Write(m.Reg.SP, uint8(m.Reg.PC>>8)); err != nil {
		return err
	}
	m.Reg.SP--
	if err := m.Write(m.Reg.SP, uint8(m.Reg.PC&0xFF)); err != nil {
		return err
	}
	m.Reg.PC = uint16(vec) * 8
	return nil
}
