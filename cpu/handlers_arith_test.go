package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflowSetsZHC(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.A = 0x01
	m.Reg.B = 0xFF
	assert.NoError(t, m.execute(0x80)) // ADD A,B
	assert.Equal(t, uint8(0x00), m.Reg.A)
	assert.True(t, m.Reg.ReadFlag(FlagZ))
	assert.True(t, m.Reg.ReadFlag(FlagH))
	assert.True(t, m.Reg.ReadFlag(FlagC))
}

func TestIncWrapsAndSetsHalfCarry(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.B = 0xFF
	m.Reg.SetFlag(FlagC, true)
	assert.NoError(t, m.execute(0x04)) // INC B
	assert.Equal(t, uint8(0x00), m.Reg.B)
	assert.True(t, m.Reg.ReadFlag(FlagZ))
	assert.True(t, m.Reg.ReadFlag(FlagH))
	assert.True(t, m.Reg.ReadFlag(FlagC), "C must be preserved, not recomputed")
}

func TestDecUnderflowSetsHalfBorrow(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.B = 0x00
	m.Reg.SetFlag(FlagC, true)
	assert.NoError(t, m.execute(0x05)) // DEC B
	assert.Equal(t, uint8(0xFF), m.Reg.B)
	assert.False(t, m.Reg.ReadFlag(FlagZ))
	assert.True(t, m.Reg.ReadFlag(FlagN))
	assert.True(t, m.Reg.ReadFlag(FlagH))
	assert.True(t, m.Reg.ReadFlag(FlagC))
}

func TestAddThenSubRestoresA(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.A = 0x20
	m.Reg.B = 0x05
	assert.NoError(t, m.execute(0x80)) // ADD A,B
	assert.NoError(t, m.execute(0x90)) // SUB B
	assert.Equal(t, uint8(0x20), m.Reg.A)
	assert.False(t, m.Reg.ReadFlag(FlagC), "0x25 - 0x05 does not borrow")
}

func TestLDHLSPZeroOffset(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.PC = 0x0100
	m.Reg.SP = 0xFFF8
	bus := &fakeBus{}
	m.Bus = bus
	bus.mem[0x0100] = 0x00
	assert.NoError(t, m.execute(0xF8)) // LD HL,SP+0
	assert.Equal(t, m.Reg.SP, m.Reg.HL())
	assert.False(t, m.Reg.ReadFlag(FlagH))
	assert.False(t, m.Reg.ReadFlag(FlagC))
}

func TestDAAAfterTwoAdds(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.A = 0x00
	m.Reg.B = 0x15
	assert.NoError(t, m.execute(0x80)) // ADD A,B -> A=0x15
	m.Reg.B = 0x27
	assert.NoError(t, m.execute(0x80)) // ADD A,B -> A=0x3C
	assert.NoError(t, m.execute(0x27)) // DAA
	assert.Equal(t, uint8(0x42), m.Reg.A)
	assert.False(t, m.Reg.ReadFlag(FlagZ))
	assert.False(t, m.Reg.ReadFlag(FlagH))
	assert.False(t, m.Reg.ReadFlag(FlagC))
}

func TestADCFoldsCarryWithByteWrapping(t *testing.T) {
	m, _ := newTestMachine()
	m.Reg.A = 0x00
	m.Reg.B = 0xFF
	m.Reg.SetFlag(FlagC, true)
	assert.NoError(t, m.execute(0x88)) // ADC A,B: x' = 0xFF+1 wraps to 0x00
	assert.Equal(t, uint8(0x00), m.Reg.A)
	assert.False(t, m.Reg.ReadFlag(FlagC), "the byte-wrapping quirk loses the extra carry")
}
