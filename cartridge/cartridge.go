// Package cartridge implements a fixed bank-0/bank-1 read-only cartridge:
// no MBC, per the core's Non-goals. External RAM is a plain byte slice when
// the header declares nonzero RAM size; it carries no persistence.
package cartridge

import "gbcore/rom"

// Cartridge wraps a ROM image as mem.Cartridge: ROM bank switching is never
// implemented, so every read of 0x0000-0x7FFF addresses the image directly
// and every write to that range is rejected by the memory map before it
// reaches here.
type Cartridge struct {
	rom    []byte
	extRAM []byte
}

// New builds a Cartridge from a raw image and its parsed header. extRAM is
// sized from header.RAMSize() and zero-initialized.
func New(image []byte, header rom.Header) *Cartridge {
	return &Cartridge{
		rom:    image,
		extRAM: make([]byte, header.RAMSize()),
	}
}

// ReadROM returns the byte at addr, which may be anywhere in 0x0000-0x7FFF.
// Addresses past the image's length return 0xFF, matching open-bus reads on
// an under-sized ROM.
func (c *Cartridge) ReadROM(addr uint16) uint8 {
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// HasExtRAM reports whether the header declared any external RAM.
func (c *Cartridge) HasExtRAM() bool {
	return len(c.extRAM) > 0
}

// ReadExtRAM reads a zero-based offset into the external RAM window.
func (c *Cartridge) ReadExtRAM(addr uint16) uint8 {
	if int(addr) >= len(c.extRAM) {
		return 0xFF
	}
	return c.extRAM[addr]
}

// WriteExtRAM writes a zero-based offset into the external RAM window.
// Out-of-range writes are dropped.
func (c *Cartridge) WriteExtRAM(addr uint16, v uint8) {
	if int(addr) >= len(c.extRAM) {
		return
	}
	c.extRAM[addr] = v
}
