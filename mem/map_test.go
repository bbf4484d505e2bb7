package mem

import (
	"testing"

	"gbcore/gberr"

	"github.com/stretchr/testify/assert"
)

type fakeCart struct {
	rom    [0x8000]uint8
	ram    [0x2000]uint8
	hasRAM bool
}

func (f *fakeCart) ReadROM(addr uint16) uint8        { return f.rom[addr] }
func (f *fakeCart) HasExtRAM() bool                  { return f.hasRAM }
func (f *fakeCart) ReadExtRAM(addr uint16) uint8      { return f.ram[addr] }
func (f *fakeCart) WriteExtRAM(addr uint16, v uint8) { f.ram[addr] = v }

func TestROMIsReadOnly(t *testing.T) {
	cart := &fakeCart{}
	cart.rom[0x10] = 0x42
	m := NewMap(cart)

	v, err := m.Read(0x10)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	err = m.Write(0x10, 0xFF)
	assert.Error(t, err)
	var roErr gberr.ReadOnlyAddress
	assert.ErrorAs(t, err, &roErr)
}

func TestVRAMReadWrite(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0x8000, 0x7E))
	v, err := m.Read(0x8000)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x7E), v)
}

func TestEchoRAMMirrorsWorkRAM(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0xC010, 0x99))
	v, err := m.Read(0xE010)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)

	assert.NoError(t, m.Write(0xE020, 0x55))
	v, err = m.Read(0xC020)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x55), v)
}

func TestProhibitedRegion(t *testing.T) {
	m := NewMap(nil)
	v, err := m.Read(0xFEA0)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xFF), v)

	assert.NoError(t, m.Write(0xFEA0, 0x11))
	v, _ = m.Read(0xFEA0)
	assert.Equal(t, uint8(0xFF), v, "write into prohibited region must be dropped")
}

func TestExternalRAMAbsentReadsFF(t *testing.T) {
	m := NewMap(&fakeCart{hasRAM: false})
	v, err := m.Read(0xA000)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xFF), v)
}

func TestExternalRAMPresent(t *testing.T) {
	m := NewMap(&fakeCart{hasRAM: true})
	assert.NoError(t, m.Write(0xA010, 0x33))
	v, err := m.Read(0xA010)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x33), v)
}

func TestLYAndIFAccessors(t *testing.T) {
	m := NewMap(nil)
	m.SetLY(100)
	assert.Equal(t, uint8(100), m.LY())

	m.SetIF(0x01)
	assert.Equal(t, uint8(0x01), m.IF())
}

func TestIERegister(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0xFFFF, 0x1F))
	v, err := m.Read(0xFFFF)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x1F), v)
}

func TestJoypadRoutedThroughRegisters(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0xFF00, 0x20))
	assert.Equal(t, uint8(0x20), m.Joypad.Read())
	v, err := m.Read(0xFF00)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x20), v)
}

func TestSerialRoutedThroughRegisters(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0xFF01, 0xAB))
	assert.NoError(t, m.Write(0xFF02, 0x81))
	assert.Equal(t, uint8(0xAB), m.Serial.SB)
	assert.Equal(t, uint8(0x81), m.Serial.SC)
	v, err := m.Read(0xFF01)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
}

func TestTimerRoutedThroughRegisters(t *testing.T) {
	m := NewMap(nil)
	assert.NoError(t, m.Write(0xFF06, 0x42))
	assert.Equal(t, uint8(0x42), m.Timer.TMA)
	v, err := m.Read(0xFF06)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
}

func TestAdvanceTimersIncrementsDIV(t *testing.T) {
	m := NewMap(nil)
	m.AdvanceTimers(256)
	assert.Equal(t, uint8(1), m.Timer.DIV)
}
