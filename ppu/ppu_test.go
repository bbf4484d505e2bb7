package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeIO struct {
	ly uint8
	ifReg uint8
}

func (f *fakeIO) LY() uint8      { return f.ly }
func (f *fakeIO) SetLY(v uint8)  { f.ly = v }
func (f *fakeIO) IF() uint8      { return f.ifReg }
func (f *fakeIO) SetIF(v uint8)  { f.ifReg = v }

func tickN(p *PPU, io IOPorts, n int) {
	for i := 0; i < n; i++ {
		p.OnTick(io)
	}
}

func TestLYAdvancesEvery456TCycles(t *testing.T) {
	p := New()
	io := &fakeIO{}
	tickN(p, io, 113) // 113*4 = 452, not yet
	assert.Equal(t, uint8(0), io.LY())
	p.OnTick(io) // 456th
	assert.Equal(t, uint8(1), io.LY())
}

func TestLYWrapsAt154(t *testing.T) {
	p := New()
	io := &fakeIO{ly: 153}
	tickN(p, io, 114)
	assert.Equal(t, uint8(0), io.LY())
}

func TestVBlankIFSetOnEntry144(t *testing.T) {
	p := New()
	io := &fakeIO{ly: 143}
	tickN(p, io, 114)
	assert.Equal(t, uint8(144), io.LY())
	assert.Equal(t, uint8(0x01), io.IF()&0x01)
}

func TestVBlankIFRisesOncePerFrame(t *testing.T) {
	p := New()
	io := &fakeIO{}
	setCount := 0
	prevIF := uint8(0)
	// run a full 154-scanline frame, counting transitions of the VBlank bit.
	for i := 0; i < 154*114; i++ {
		p.OnTick(io)
		if io.IF()&0x01 != 0 && prevIF&0x01 == 0 {
			setCount++
		}
		prevIF = io.IF()
		io.SetIF(io.IF() &^ 0x01) // consumer clears it, as the CPU would after servicing
	}
	assert.Equal(t, 1, setCount)
}

func TestPollExit(t *testing.T) {
	p := New()
	assert.False(t, p.PollExit())
	p.RequestExit()
	assert.True(t, p.PollExit())
}

func TestConsumeFrameReadyOnlyAtVBlank(t *testing.T) {
	p := New()
	io := &fakeIO{}
	_, ready := p.ConsumeFrame()
	assert.False(t, ready)

	io.ly = 143
	tickN(p, io, 114)
	assert.Equal(t, uint8(144), io.LY())

	_, ready = p.ConsumeFrame()
	assert.True(t, ready)
	_, ready = p.ConsumeFrame()
	assert.False(t, ready, "a second consume before the next VBlank must report no frame")
}
