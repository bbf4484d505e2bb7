// Package display is the windowing collaborator: it receives the PPU's
// framebuffer once per VBlank and presents it. Pixel rendering is entirely
// its responsibility; the core only guarantees timely LY/VBlank progression.
package display

// Width and Height are the DMG's fixed framebuffer dimensions.
const (
	Width  = 160
	Height = 144
)

// Presenter receives a completed frame and reports whether the user closed
// the window — wired into ppu.PPU.RequestExit by the caller.
type Presenter interface {
	Present(frame [Height][Width]uint8) error
	CloseRequested() bool
}
