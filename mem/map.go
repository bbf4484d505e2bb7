// Package mem implements the Game Boy memory map: address decoding, region
// policy, and the small set of I/O register accessors the CPU and PPU
// bridge touch directly.
package mem

import (
	"gbcore/gberr"
	"gbcore/joypad"
	"gbcore/serial"
	"gbcore/timer"
)

const (
	vramSize = 0x2000
	wramSize = 0x2000
	oamSize  = 0x00A0
	hramSize = 0x007F
	ioSize   = 0x0080
)

// Cartridge is the ROM/external-RAM collaborator. cartridge.Cartridge
// satisfies this without mem importing that package.
type Cartridge interface {
	ReadROM(addr uint16) uint8
	HasExtRAM() bool
	ReadExtRAM(addr uint16) uint8
	WriteExtRAM(addr uint16, v uint8)
}

// Map is the full 16-bit address space, decoded per region. The joypad,
// serial, and timer register blocks are addressed through their own structs
// rather than the flat IO array; every other IO offset falls through to IO.
type Map struct {
	Cart Cartridge

	Joypad joypad.Registers
	Serial serial.Registers
	Timer  timer.Registers

	VRAM [vramSize]uint8
	WRAM [wramSize]uint8
	OAM  [oamSize]uint8
	IO   [ioSize]uint8
	HRAM [hramSize]uint8
	IE   uint8
}

// NewMap wires a region table around the given cartridge collaborator.
func NewMap(cart Cartridge) *Map {
	return &Map{Cart: cart}
}

// Read decodes addr and returns the byte at that location. Reads never fail:
// out-of-range I/O and prohibited-region reads return sentinel values rather
// than surfacing BadAddress, matching real hardware's open-bus behavior for
// the ranges this core models.
func (m *Map) Read(addr uint16) (uint8, error) {
	switch {
	case addr <= 0x7FFF:
		if m.Cart != nil {
			return m.Cart.ReadROM(addr), nil
		}
		return 0xFF, nil
	case addr <= 0x9FFF:
		return m.VRAM[addr-0x8000], nil
	case addr <= 0xBFFF:
		if m.Cart != nil && m.Cart.HasExtRAM() {
			return m.Cart.ReadExtRAM(addr - 0xA000), nil
		}
		return 0xFF, nil
	case addr <= 0xDFFF:
		return m.WRAM[addr-0xC000], nil
	case addr <= 0xFDFF:
		return m.WRAM[addr-0xE000], nil
	case addr <= 0xFE9F:
		return m.OAM[addr-0xFE00], nil
	case addr <= 0xFEFF:
		return 0xFF, nil
	case addr <= 0xFF7F:
		offset := uint8(addr - 0xFF00)
		switch {
		case offset == 0x00:
			return m.Joypad.Read(), nil
		case offset == 0x01 || offset == 0x02:
			return m.Serial.Read(offset - 0x01), nil
		case offset >= 0x04 && offset <= 0x07:
			return m.Timer.Read(offset - 0x04), nil
		default:
			return m.IO[offset], nil
		}
	case addr <= 0xFFFE:
		return m.HRAM[addr-0xFF80], nil
	case addr == 0xFFFF:
		return m.IE, nil
	default:
		return 0, gberr.BadAddress(addr)
	}
}

// Write decodes addr and stores the byte there. Writes into ROM fail with
// ReadOnlyAddress; writes into the prohibited window are silently dropped;
// echo RAM aliases work RAM symmetrically.
func (m *Map) Write(addr uint16, v uint8) error {
	switch {
	case addr <= 0x7FFF:
		return gberr.ReadOnlyAddress(addr)
	case addr <= 0x9FFF:
		m.VRAM[addr-0x8000] = v
		return nil
	case addr <= 0xBFFF:
		if m.Cart != nil && m.Cart.HasExtRAM() {
			m.Cart.WriteExtRAM(addr-0xA000, v)
		}
		return nil
	case addr <= 0xDFFF:
		m.WRAM[addr-0xC000] = v
		return nil
	case addr <= 0xFDFF:
		m.WRAM[addr-0xE000] = v
		return nil
	case addr <= 0xFE9F:
		m.OAM[addr-0xFE00] = v
		return nil
	case addr <= 0xFEFF:
		return nil
	case addr <= 0xFF7F:
		offset := uint8(addr - 0xFF00)
		switch {
		case offset == 0x00:
			m.Joypad.Write(v)
		case offset == 0x01 || offset == 0x02:
			m.Serial.Write(offset-0x01, v)
		case offset >= 0x04 && offset <= 0x07:
			m.Timer.Write(offset-0x04, v)
		default:
			m.IO[offset] = v
		}
		return nil
	case addr <= 0xFFFE:
		m.HRAM[addr-0xFF80] = v
		return nil
	case addr == 0xFFFF:
		m.IE = v
		return nil
	default:
		return gberr.BadAddress(addr)
	}
}

const (
	lyOffset = 0xFF44 - 0xFF00
	ifOffset = 0xFF0F - 0xFF00
)

// AdvanceTimers feeds elapsed T-cycles to the timer block's free-running
// DIV counter. Called once per clock tick by cpu.Machine.
func (m *Map) AdvanceTimers(tCycles uint64) {
	m.Timer.Advance(tCycles)
}

// LY returns the current scanline register. Owned by the PPU bridge.
func (m *Map) LY() uint8 { return m.IO[lyOffset] }

// SetLY writes the scanline register.
func (m *Map) SetLY(v uint8) { m.IO[lyOffset] = v }

// IF returns the interrupt-request register.
func (m *Map) IF() uint8 { return m.IO[ifOffset] }

// SetIF writes the interrupt-request register.
func (m *Map) SetIF(v uint8) { m.IO[ifOffset] = v }
