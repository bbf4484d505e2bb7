package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteByOffset(t *testing.T) {
	var r Registers
	r.Write(0, 0xAB)
	r.Write(1, 0x81)
	assert.Equal(t, uint8(0xAB), r.Read(0))
	assert.Equal(t, uint8(0x81), r.Read(1))
}
