package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteU16(t *testing.T) {
	lo, hi := WriteU16(0xBEEF)
	assert.Equal(t, uint8(0xEF), lo)
	assert.Equal(t, uint8(0xBE), hi)
	assert.Equal(t, uint16(0xBEEF), ReadU16(lo, hi))
}

func TestReadBits(t *testing.T) {
	tests := []struct {
		name   string
		n      uint8
		index  uint8
		length uint8
		want   uint8
	}{
		{"low nibble", 0xAB, 0, 4, 0xB},
		{"high nibble", 0xAB, 4, 4, 0xA},
		{"single bit set", 0b0000_1000, 3, 1, 1},
		{"single bit clear", 0b0000_0000, 3, 1, 0},
		{"full byte", 0xFF, 0, 8, 0xFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadBits(tt.n, tt.index, tt.length))
		})
	}
}

func TestSetBitAndIsSet(t *testing.T) {
	n := SetBit(0x00, 7, true)
	assert.True(t, IsSet(n, 7))
	n = SetBit(n, 7, false)
	assert.False(t, IsSet(n, 7))
}

func TestWriteBitsRoundTrip(t *testing.T) {
	for _, target := range []uint8{0x00, 0xFF, 0xA5, 0x3C} {
		for index := uint8(0); index < 8; index++ {
			for length := uint8(1); index+length <= 8; length++ {
				got, err := WriteBits(target, index, length, ReadBits(target, index, length))
				assert.NoError(t, err)
				assert.Equal(t, target, got)
			}
		}
	}
}

func TestWriteBitsOverflow(t *testing.T) {
	_, err := WriteBits(0x00, 5, 4, 0x0F)
	assert.Error(t, err)
}

func TestRotateLeftRightInverse(t *testing.T) {
	for _, n := range []uint8{0x00, 0x01, 0x80, 0xFF, 0xAA, 0x55} {
		for _, carry := range []bool{true, false} {
			for _, through := range []bool{true, false} {
				rotated, newCarry := RotateLeft(n, carry, through)
				back, _ := RotateRight(rotated, newCarry, through)
				assert.Equal(t, n, back)
			}
		}
	}
}

func TestRotateLeftThroughCarry(t *testing.T) {
	result, carry := RotateLeft(0x80, true, true)
	assert.Equal(t, uint8(0x01), result)
	assert.True(t, carry)
}

func TestRotateLeftNotThroughCarry(t *testing.T) {
	result, carry := RotateLeft(0x80, false, false)
	assert.Equal(t, uint8(0x01), result)
	assert.True(t, carry)
}
