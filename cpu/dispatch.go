package cpu

import "gbcore/gberr"

// execute decodes and runs the instruction named by a primary opcode,
// dispatching to 0xCB's secondary table when needed. STOP (0x10), CPL
// (0x2F), SCF (0x37), CCF (0x3F) and HALT (0x76) are not implemented and
// fail with IllegalInstruction, like the eleven illegal opcodes.
func (m *Machine) execute(op uint8) error {
	switch {
	case op == 0xCB:
		sub, err := m.FetchByte()
		if err != nil {
			return err
		}
		return m.executeCB(sub)

	case op == 0x00:
		return nil // NOP

	case op == 0xF3:
		m.IME = false
		return nil // DI

	case op == 0xFB:
		m.IME = true
		return nil // EI — set immediately; real hardware delays by one instruction (documented deviation)

	case isIllegal(op):
		return gberr.IllegalInstruction(op)

	case op == 0xC3:
		return m.jp(true, 0)
	case op == 0xC2 || op == 0xCA || op == 0xD2 || op == 0xDA:
		return m.jp(false, jpConditionField(op))
	case op == 0xE9:
		return m.jpHL()

	case op == 0x18:
		return m.jr(true, 0)
	case op == 0x20 || op == 0x28 || op == 0x30 || op == 0x38:
		return m.jr(false, jrConditionField(op))

	case op == 0xCD:
		return m.call(true, 0)
	case op == 0xC4 || op == 0xCC || op == 0xD4 || op == 0xDC:
		return m.call(false, jpConditionField(op))

	case op == 0xC9:
		return m.ret(true, 0)
	case op == 0xD9:
		return m.reti()
	case op == 0xC0 || op == 0xC8 || op == 0xD0 || op == 0xD8:
		return m.ret(false, jpConditionField(op))

	case isRST(op):
		return m.rst(op)

	case op >= 0x40 && op < 0x80 && op != 0x76:
		return m.ldR8R8(op)
	case op == 0x76:
		return gberr.IllegalInstruction(op) // HALT: unimplemented timer/interrupt wake, treated as illegal for this core

	case isLDR8N8(op):
		return m.ldR8N8(op)

	case op == 0x01 || op == 0x11 || op == 0x21 || op == 0x31:
		return m.ldR16N16(op)
	case op == 0x02 || op == 0x12 || op == 0x22 || op == 0x32:
		return m.ldR16MemA(op)
	case op == 0x0A || op == 0x1A || op == 0x2A || op == 0x3A:
		return m.ldAR16Mem(op)
	case op == 0x08:
		return m.ldN16SP()
	case op == 0xEA:
		return m.ldN16A()
	case op == 0xFA:
		return m.ldAN16()
	case op == 0xE0:
		return m.ldhN8A()
	case op == 0xF0:
		return m.ldhAN8()
	case op == 0xE2:
		return m.ldhCA()
	case op == 0xF2:
		return m.ldhAC()
	case op == 0xF8:
		return m.ldHLSPE8()
	case op == 0xF9:
		return m.ldSPHL()

	case op == 0xC5 || op == 0xD5 || op == 0xE5 || op == 0xF5:
		return m.push(op)
	case op == 0xC1 || op == 0xD1 || op == 0xE1 || op == 0xF1:
		return m.pop(op)

	case op >= 0x80 && op < 0x88 || op == 0xC6:
		return m.addA(op)
	case op >= 0x88 && op < 0x90 || op == 0xCE:
		return m.adcA(op)
	case op >= 0x90 && op < 0x98 || op == 0xD6:
		return m.subA(op)
	case op >= 0x98 && op < 0xA0 || op == 0xDE:
		return m.sbcA(op)
	case op >= 0xA0 && op < 0xA8 || op == 0xE6:
		return m.andA(op)
	case op >= 0xA8 && op < 0xB0 || op == 0xEE:
		return m.xorA(op)
	case op >= 0xB0 && op < 0xB8 || op == 0xF6:
		return m.orA(op)
	case op >= 0xB8 && op < 0xC0 || op == 0xFE:
		return m.cpA(op)

	case isIncR8(op):
		return m.incR8(op)
	case isDecR8(op):
		return m.decR8(op)
	case op == 0x03 || op == 0x13 || op == 0x23 || op == 0x33:
		return m.incR16(op)
	case op == 0x0B || op == 0x1B || op == 0x2B || op == 0x3B:
		return m.decR16(op)
	case op == 0x09 || op == 0x19 || op == 0x29 || op == 0x39:
		return m.addHLR16(op)
	case op == 0xE8:
		return m.addSPE8()
	case op == 0x27:
		return m.daa()

	case op == 0x07:
		return m.rlca()
	case op == 0x17:
		return m.rla()
	case op == 0x0F:
		return m.rrca()
	case op == 0x1F:
		return m.rra()

	default:
		return gberr.IllegalInstruction(op)
	}
}

func isIllegal(op uint8) bool {
	switch op {
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return true
	}
	return false
}

func isRST(op uint8) bool {
	switch op {
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return true
	}
	return false
}

func isLDR8N8(op uint8) bool {
	switch op {
	case 0x06, 0x16, 0x26, 0x36, 0x0E, 0x1E, 0x2E, 0x3E:
		return true
	}
	return false
}

func isIncR8(op uint8) bool {
	switch op {
	case 0x04, 0x14, 0x24, 0x34, 0x0C, 0x1C, 0x2C, 0x3C:
		return true
	}
	return false
}

func isDecR8(op uint8) bool {
	switch op {
	case 0x05, 0x15, 0x25, 0x35, 0x0D, 0x1D, 0x2D, 0x3D:
		return true
	}
	return false
}

// jpConditionField extracts the 2-bit condition field from a conditional
// jump/call/return opcode (bits 3..4).
func jpConditionField(op uint8) Condition {
	return Condition((op >> 3) & 0x03)
}

// jrConditionField extracts JR's 2-bit condition field. Same bit position
// as JP/CALL/RET despite JR's unconditional opcode (0x18) differing from
// theirs (0xC3/0xCD/0xC9).
func jrConditionField(op uint8) Condition {
	return Condition((op >> 3) & 0x03)
}
