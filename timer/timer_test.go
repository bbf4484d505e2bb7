package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceIncrementsDIVEvery256TCycles(t *testing.T) {
	var r Registers
	r.Advance(255)
	assert.Equal(t, uint8(0), r.DIV)
	r.Advance(1)
	assert.Equal(t, uint8(1), r.DIV)
}

func TestAdvanceAccumulatesAcrossCalls(t *testing.T) {
	var r Registers
	for i := 0; i < 256; i++ {
		r.Advance(4)
	}
	assert.Equal(t, uint8(4), r.DIV)
}

func TestWriteDIVResetsRegardlessOfValue(t *testing.T) {
	var r Registers
	r.Advance(256)
	assert.Equal(t, uint8(1), r.DIV)
	r.Write(0, 0x7F)
	assert.Equal(t, uint8(0), r.DIV)
}

func TestReadWriteTIMATMATAC(t *testing.T) {
	var r Registers
	r.Write(1, 0x10)
	r.Write(2, 0x20)
	r.Write(3, 0x04)
	assert.Equal(t, uint8(0x10), r.Read(1))
	assert.Equal(t, uint8(0x20), r.Read(2))
	assert.Equal(t, uint8(0x04), r.Read(3))
}
