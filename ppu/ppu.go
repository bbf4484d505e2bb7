// Package ppu implements the minimal PPU bridge: it advances the LY
// scanline register in step with the clock and raises the VBlank interrupt
// request. Pixel rendering is left to a display collaborator.
package ppu

// IOPorts is the slice of the I/O register block the PPU bridge touches.
// It is satisfied structurally by mem.Map; this package never imports mem.
type IOPorts interface {
	LY() uint8
	SetLY(uint8)
	IF() uint8
	SetIF(uint8)
}

const (
	ticksPerScanline = 456
	scanlinesPerFrame = 154
	vblankLine        = 144
	vblankIFBit       = uint8(1 << 0)
)

// frameHeight and frameWidth mirror the DMG's fixed framebuffer dimensions
// (display.Height/display.Width). Stated as literals rather than imported
// from display to keep ppu free of a dependency on the windowing package;
// Go's array-type identity is structural, so display.Presenter.Present
// still accepts the array this package produces.
const (
	frameHeight = 144
	frameWidth  = 160
)

// PPU tracks the T-cycles accumulated toward the next scanline, the most
// recently completed frame, and an exit signal for the window collaborator.
// Pixel content is left zeroed — rendering scanline data into the
// framebuffer is a Non-goal — but the frame is still delivered once per
// VBlank so a display collaborator has something to present.
type PPU struct {
	scanlineTicks uint64
	exitRequested bool
	frame         [frameHeight][frameWidth]uint8
	frameReady    bool
}

// New returns a PPU bridge with no scanline progress yet.
func New() *PPU {
	return &PPU{}
}

// OnTick is called every 4 T-cycles by the clock. Every 456 T-cycles it
// advances LY by one, wrapping at 154 back to 0, and sets the VBlank IF bit
// exactly once per frame, on the transition into LY=144.
func (p *PPU) OnTick(io IOPorts) {
	p.scanlineTicks += 4
	if p.scanlineTicks < ticksPerScanline {
		return
	}
	p.scanlineTicks -= ticksPerScanline

	next := io.LY() + 1
	if next >= scanlinesPerFrame {
		next = 0
	}
	io.SetLY(next)
	if next == vblankLine {
		io.SetIF(io.IF() | vblankIFBit)
		p.frameReady = true
	}
}

// ConsumeFrame returns the most recently completed frame and reports
// whether a new one has arrived since the last call. A display collaborator
// polls this once per host frame to know when to call Present.
func (p *PPU) ConsumeFrame() ([frameHeight][frameWidth]uint8, bool) {
	if !p.frameReady {
		return p.frame, false
	}
	p.frameReady = false
	return p.frame, true
}

// RequestExit marks the bridge so PollExit reports true. Called by the
// display collaborator when the window close signal fires.
func (p *PPU) RequestExit() {
	p.exitRequested = true
}

// PollExit reports whether the dispatch loop should stop.
func (p *PPU) PollExit() bool {
	return p.exitRequested
}
