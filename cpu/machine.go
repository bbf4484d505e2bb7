package cpu

import (
	"fmt"

	"gbcore/ppu"
)

// Bus is the memory-mapped address space the CPU operates on. Machine never
// depends on the concrete mem.Map type; any type satisfying Bus (and, by
// structural extension, ppu.IOPorts) can stand in, including test doubles.
type Bus interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, v uint8) error
	LY() uint8
	SetLY(uint8)
	IF() uint8
	SetIF(uint8)
	AdvanceTimers(tCycles uint64)
}

// PPUBridge is the minimal collaborator notified on every clock tick.
// ppu.PPU satisfies this without Machine importing its concrete type.
type PPUBridge interface {
	OnTick(io ppu.IOPorts)
	PollExit() bool
}

// Machine is the aggregate execution context: register file, bus, clock, and
// PPU bridge, plus the interrupt-master-enable latch. It exists to break the
// cyclic-by-data graph between dispatch, memory, the clock, and the PPU —
// handlers receive a single exclusive handle instead of aliased references
// to each collaborator.
type Machine struct {
	Reg   *Registers
	Bus   Bus
	Clock Clock
	PPU   PPUBridge
	IME   bool
}

// NewMachine wires a fresh DMG-boot register file to the given bus and PPU
// bridge. PPU may be nil for tests that don't care about scanline timing.
func NewMachine(bus Bus, bridge PPUBridge) *Machine {
	return &Machine{
		Reg: NewRegisters(),
		Bus: bus,
		PPU: bridge,
	}
}

// tick advances the clock by one M-cycle and, if a PPU bridge is attached,
// notifies it synchronously.
func (m *Machine) tick() {
	m.Clock.Tick()
	m.Bus.AdvanceTimers(4)
	if m.PPU != nil {
		m.PPU.OnTick(m.Bus)
	}
}

// Read performs a bus read, ticking the clock once.
func (m *Machine) Read(addr uint16) (uint8, error) {
	m.tick()
	return m.Bus.Read(addr)
}

// Write performs a bus write, ticking the clock once.
func (m *Machine) Write(addr uint16, v uint8) error {
	m.tick()
	return m.Bus.Write(addr, v)
}

// InternalTick accounts for a bus turnaround with no associated address —
// the extra ticks the architecture spends on internal branch/stack/ALU
// bookkeeping, called explicitly by each handler that needs one.
func (m *Machine) InternalTick() {
	m.tick()
}

// FetchByte reads the byte at PC and advances PC by one.
func (m *Machine) FetchByte() (uint8, error) {
	v, err := m.Read(m.Reg.PC)
	if err != nil {
		return 0, err
	}
	m.Reg.PC++
	return v, nil
}

// FetchWord reads the little-endian 16-bit value at PC and advances PC by
// two.
func (m *Machine) FetchWord() (uint16, error) {
	lo, err := m.FetchByte()
	if err != nil {
		return 0, err
	}
	hi, err := m.FetchByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// FetchSigned fetches the next byte as a sign-extended 16-bit offset, as
// used by JR and the SP-relative loads.
func (m *Machine) FetchSigned() (int16, error) {
	v, err := m.FetchByte()
	if err != nil {
		return 0, err
	}
	return int16(int8(v)), nil
}

// Step fetches, decodes, and executes exactly one instruction, returning the
// error from the first failing handler, if any.
func (m *Machine) Step() error {
	op, err := m.FetchByte()
	if err != nil {
		return err
	}
	return m.execute(op)
}

// Run drives Step in a loop until a handler returns an error or the attached
// PPU bridge reports the window wants to close.
func (m *Machine) Run() error {
	for {
		if m.PPU != nil && m.PPU.PollExit() {
			return nil
		}
		if err := m.Step(); err != nil {
			return fmt.Errorf("gbcore: halted at PC=%#04x: %w", m.Reg.PC, err)
		}
	}
}
