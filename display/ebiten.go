package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// dmgPalette maps the PPU's 2-bit shade index to the classic DMG green tint.
var dmgPalette = [4]color.RGBA{
	{0x9B, 0xBC, 0x0F, 0xFF},
	{0x8B, 0xAC, 0x0F, 0xFF},
	{0x30, 0x62, 0x30, 0xFF},
	{0x0F, 0x38, 0x0F, 0xFF},
}

// EbitenPresenter presents the PPU framebuffer in an ebiten window, scaling
// the fixed 160x144 image up with golang.org/x/image/draw.
type EbitenPresenter struct {
	scale   int
	source  *image.RGBA
	scaled  *image.RGBA
	img     *ebiten.Image
	closing bool
}

// NewEbitenPresenter builds a presenter that scales the DMG framebuffer by
// the given integer factor (e.g. 3 for a 480x432 window).
func NewEbitenPresenter(scale int) *EbitenPresenter {
	if scale < 1 {
		scale = 1
	}
	return &EbitenPresenter{
		scale:  scale,
		source: image.NewRGBA(image.Rect(0, 0, Width, Height)),
		scaled: image.NewRGBA(image.Rect(0, 0, Width*scale, Height*scale)),
	}
}

// Present converts the 2-bit shade framebuffer to RGBA, scales it, and
// blits it into the ebiten image that Draw shows next frame.
func (p *EbitenPresenter) Present(frame [Height][Width]uint8) error {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p.source.SetRGBA(x, y, dmgPalette[frame[y][x]&0x03])
		}
	}
	draw.NearestNeighbor.Scale(p.scaled, p.scaled.Bounds(), p.source, p.source.Bounds(), draw.Over, nil)
	if p.img == nil {
		p.img = ebiten.NewImageFromImage(p.scaled)
	} else {
		p.img.WritePixels(p.scaled.Pix)
	}
	return nil
}

// CloseRequested reports whether ebiten's window close signal has fired.
func (p *EbitenPresenter) CloseRequested() bool {
	return p.closing || ebiten.IsWindowBeingClosed()
}

// Update satisfies ebiten.Game; the core drives emulation on its own
// goroutine, so there is nothing to advance here besides polling for close.
func (p *EbitenPresenter) Update() error {
	if ebiten.IsWindowBeingClosed() {
		p.closing = true
	}
	return nil
}

// Draw satisfies ebiten.Game, blitting the latest presented frame.
func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	if p.img != nil {
		screen.DrawImage(p.img, nil)
	}
}

// Layout satisfies ebiten.Game with the fixed scaled framebuffer size.
func (p *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width * p.scale, Height * p.scale
}

// Run blocks on ebiten's window loop. Must be called from the main
// goroutine; the CPU dispatch loop runs on its own goroutine and feeds
// frames in through Present.
func (p *EbitenPresenter) Run(title string) error {
	ebiten.SetWindowSize(Width*p.scale, Height*p.scale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(p)
}
