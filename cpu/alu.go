package cpu

import "math/bits"

// parity reports whether v has an even number of set bits (the 8080's
// Parity flag convention).
func parity(v byte) bool {
	return bits.OnesCount8(v)%2 == 0
}

// setZSP sets Zero, Sign, and Parity from v. Carry and AuxCarry are left to
// the caller, since they depend on the operation that produced v, not on v
// alone.
func (c *CPU) setZSP(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Sign = v&0x80 != 0
	c.Flags.Parity = parity(v)
}

// add computes a+b+cin on the 8-bit ALU, widened to 9 bits so the carry out
// of bit 7 is observable, and sets CY/AC/Z/S/P. AC is the carry out of bit
// 3 of the low-nibble sum.
func (c *CPU) add(a, b byte, cin byte) byte {
	wide := uint16(a) + uint16(b) + uint16(cin)
	c.Flags.Carry = wide > 0xFF
	c.Flags.AuxCarry = (a&0x0F)+(b&0x0F)+cin > 0x0F
	r := byte(wide)
	c.setZSP(r)
	return r
}

// sub computes a-b-bin with borrow, equivalent to the reference
// implementation's widen-by-0x100-then-subtract trick, and sets CY/AC/Z/S/P.
// CY is the borrow out of bit 7; AC is the borrow out of bit 3.
func (c *CPU) sub(a, b byte, bin byte) byte {
	c.Flags.Carry = uint16(a) < uint16(b)+uint16(bin)
	c.Flags.AuxCarry = (a & 0x0F) < (b&0x0F)+bin
	r := a - b - bin
	c.setZSP(r)
	return r
}

// logicOp applies a bitwise AND/OR/XOR result to the flags, per spec: CY
// and AC are always cleared for logical operations.
func (c *CPU) logicOp(r byte) byte {
	c.Flags.Carry = false
	c.Flags.AuxCarry = false
	c.setZSP(r)
	return r
}

// inr increments v by one, updating Z/S/P/AC but leaving CY unchanged.
func (c *CPU) inr(v byte) byte {
	r := v + 1
	c.Flags.AuxCarry = v&0x0F == 0x0F
	c.setZSP(r)
	return r
}

// dcr decrements v by one, updating Z/S/P/AC but leaving CY unchanged.
func (c *CPU) dcr(v byte) byte {
	r := v - 1
	c.Flags.AuxCarry = v&0x0F != 0
	c.setZSP(r)
	return r
}

// dad adds rp into HL; CY reflects overflow of bit 15, no other flags
// change.
func (c *CPU) dad(rp uint16) {
	wide := uint32(c.hl()) + uint32(rp)
	c.Flags.Carry = wide > 0xFFFF
	c.setHL(uint16(wide))
}

// rlc rotates A left circularly: new bit 0 is the old bit 7, which also
// becomes CY.
func (c *CPU) rlc() {
	bit7 := c.A >> 7
	c.A = (c.A << 1) | bit7
	c.Flags.Carry = bit7 != 0
}

// rrc rotates A right circularly: new bit 7 is the old bit 0, which also
// becomes CY.
func (c *CPU) rrc() {
	bit0 := c.A & 0x01
	c.A = (c.A >> 1) | (bit0 << 7)
	c.Flags.Carry = bit0 != 0
}

// ral rotates A left through carry: new bit 0 is the old CY, old bit 7
// becomes the new CY.
func (c *CPU) ral() {
	bit7 := c.A >> 7
	var cin byte
	if c.Flags.Carry {
		cin = 1
	}
	c.A = (c.A << 1) | cin
	c.Flags.Carry = bit7 != 0
}

// rar rotates A right through carry: new bit 7 is the old CY, old bit 0
// becomes the new CY.
func (c *CPU) rar() {
	bit0 := c.A & 0x01
	var cin byte
	if c.Flags.Carry {
		cin = 0x80
	}
	c.A = (c.A >> 1) | cin
	c.Flags.Carry = bit0 != 0
}

// daa applies the decimal-adjust algorithm: conditionally add 6 to the low
// nibble, then conditionally add 0x60 to the high nibble, tracking carry
// out of either step.
func (c *CPU) daa() {
	correction := byte(0)
	carryOut := c.Flags.Carry

	lowNibble := c.A & 0x0F
	highNibble := c.A >> 4
	if lowNibble > 9 || c.Flags.AuxCarry {
		correction |= 0x06
	}
	if highNibble > 9 || carryOut || (highNibble == 9 && lowNibble > 9) {
		correction |= 0x60
		carryOut = true
	}

	c.A = c.add(c.A, correction, 0)
	c.Flags.Carry = carryOut
}
