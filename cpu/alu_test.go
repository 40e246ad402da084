package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParity(t *testing.T) {
	assert.True(t, parity(0x00))
	assert.True(t, parity(0x03)) // two bits set
	assert.False(t, parity(0x01))
	assert.False(t, parity(0x07))
}

func TestAddFlags(t *testing.T) {
	c := New()
	c.A = 0x80
	c.B = 0x7B
	c.A = c.add(c.A, c.B, 0)
	assert.Equal(t, c.A, byte(0xFB))
	assert.True(t, c.Flags.Sign)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Carry)

	c2 := New()
	c2.A = 0xFF
	c2.B = 0x02
	c2.A = c2.add(c2.A, c2.B, 0)
	assert.Equal(t, c2.A, byte(0x01))
	assert.True(t, c2.Flags.Carry)
	assert.False(t, c2.Flags.Zero)
}

func TestSubBorrow(t *testing.T) {
	c := New()
	c.A = 0x00
	r := c.sub(c.A, 0x01, 0)
	assert.Equal(t, r, byte(0xFF))
	assert.True(t, c.Flags.Carry) // borrow occurred
}

func TestCmpLeavesALikeSub(t *testing.T) {
	c1 := New()
	c1.A = 0x10
	c1.sub(c1.A, 0x05, 0)

	c2 := New()
	c2.A = 0x10
	c2.B = 0x05
	before := c2.A
	cmp(c2, 0xB8) // CMP B discards the result but keeps flags
	assert.Equal(t, c2.A, before)
	assert.Equal(t, c1.Flags, c2.Flags)
}

func TestInrDcrRoundTrip(t *testing.T) {
	c := New()
	c.Flags.Carry = true
	v := byte(0x0F)
	v = c.inr(v)
	assert.True(t, c.Flags.AuxCarry) // carry out of bit 3
	v = c.dcr(v)
	assert.Equal(t, v, byte(0x0F))
	assert.True(t, c.Flags.Carry) // CY untouched by INR/DCR
}

func TestDadCarry(t *testing.T) {
	c := New()
	c.setHL(0xFFFF)
	c.dad(1)
	assert.Equal(t, c.hl(), uint16(0x0000))
	assert.True(t, c.Flags.Carry)
}

func TestRotates(t *testing.T) {
	c := New()
	c.A = 0x80
	c.rlc()
	assert.Equal(t, c.A, byte(0x01))
	assert.True(t, c.Flags.Carry)

	c = New()
	c.A = 0x01
	c.rrc()
	assert.Equal(t, c.A, byte(0x80))
	assert.True(t, c.Flags.Carry)

	c = New()
	c.A = 0x80
	c.Flags.Carry = false
	c.ral()
	assert.Equal(t, c.A, byte(0x00))
	assert.True(t, c.Flags.Carry)

	c = New()
	c.A = 0x01
	c.Flags.Carry = false
	c.rar()
	assert.Equal(t, c.A, byte(0x00))
	assert.True(t, c.Flags.Carry)
}

func TestLogicClearsCarryAndAux(t *testing.T) {
	c := New()
	c.Flags.Carry = true
	c.Flags.AuxCarry = true
	r := c.logicOp(0xF0 & 0x0F)
	assert.Equal(t, r, byte(0x00))
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.AuxCarry)
	assert.True(t, c.Flags.Zero)
}
