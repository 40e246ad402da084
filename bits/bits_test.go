package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRangePrimitives exercises Last/First/Range directly against the bit
// layout the 8080 decoder actually slices: a MOV-family opcode (0x7d,
// MOV A,L) and a register-pair opcode (0x31, LXI SP,d16).
func TestRangePrimitives(t *testing.T) {
	op := byte(0x7d) // 0b0111_1101: dest=111 (A), src=101 (L)

	assert.Equal(t, Last(op, I3), byte(0b101))
	assert.Equal(t, First(op, I1), byte(0))

	assert.Equal(t, Range(op, I3, I5), byte(0b111)) // dest field
	assert.Equal(t, Range(op, I6, I8), byte(0b101)) // src field

	rp := byte(0x31) // 0b0011_0001: rp field = 11 (SP)
	assert.Equal(t, Range(rp, I3, I4), byte(0b11))
}

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x21, 0x43), uint16(0x2143))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))
}

func TestOpcodeFields(t *testing.T) {
	// MVI H,d8 -> 0x26; dest reg code 4 (H)
	assert.Equal(t, DestRegCode(0x26), byte(4))
	// MOV A,L -> 0x7d; dest 7 (A), src 5 (L)
	assert.Equal(t, DestRegCode(0x7d), byte(7))
	assert.Equal(t, SrcRegCode(0x7d), byte(5))
	// LXI SP,d16 -> 0x31; rp 3
	assert.Equal(t, RegPairCode(0x31), byte(3))
	// JZ a16 -> 0xca; ccc 1 (Z)
	assert.Equal(t, CondCode(0xca), byte(1))
	// RST 5 -> 0xef; ccc/n 5
	assert.Equal(t, CondCode(0xef), byte(5))
	// PUSH D -> 0xd5; rp 1 (DE)
	assert.Equal(t, RegPairCode(0xd5), byte(1))
	// PUSH PSW -> 0xf5; rp 3 (PSW)
	assert.Equal(t, RegPairCode(0xf5), byte(3))
}
