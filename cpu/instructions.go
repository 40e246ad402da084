package cpu

import (
	"i8080/bits"
	"i8080/ports"
)

// Each handler below implements one 8080 mnemonic. Several opcode bytes
// share a handler, differing only in the register/pair/condition field
// embedded in the byte (see bits.DestRegCode, bits.SrcRegCode,
// bits.RegPairCode, bits.CondCode); the handler re-extracts that field from
// the opcode byte it's given rather than closing over it, since the same
// handler function is registered for every byte in its range.

func carryBit(c *CPU) byte {
	if c.Flags.Carry {
		return 1
	}
	return 0
}

// condTrue evaluates one of the eight 3-bit condition codes.
func condTrue(c *CPU, ccc byte) bool {
	switch ccc {
	case 0: // NZ
		return !c.Flags.Zero
	case 1: // Z
		return c.Flags.Zero
	case 2: // NC
		return !c.Flags.Carry
	case 3: // C
		return c.Flags.Carry
	case 4: // PO (parity odd)
		return !c.Flags.Parity
	case 5: // PE (parity even)
		return c.Flags.Parity
	case 6: // P (S=0)
		return !c.Flags.Sign
	default: // M (S=1)
		return c.Flags.Sign
	}
}

// pushPair pushes register pair code (0=BC,1=DE,2=HL,3=PSW).
func (c *CPU) pushPair(code byte) {
	if code == 3 {
		c.Bus.Write(c.SP-1, c.A)
		c.Bus.Write(c.SP-2, c.psw())
		c.SP -= 2
		return
	}
	c.push(c.getRP(code))
}

// popPair pops register pair code (0=BC,1=DE,2=HL,3=PSW).
func (c *CPU) popPair(code byte) {
	if code == 3 {
		f := c.Bus.Read(c.SP)
		a := c.Bus.Read(c.SP + 1)
		c.SP += 2
		c.setPSW(f)
		c.A = a
		return
	}
	c.setRP(code, c.pop())
}

// NOP - No Operation
func nop(c *CPU, op byte) error { return nil }

// LXI rp,d16 - Load register pair immediate
func lxi(c *CPU, op byte) error {
	c.setRP(bits.RegPairCode(op), c.fetchWord())
	return nil
}

// STAX B/D - Store A indirect through BC or DE
func stax(c *CPU, op byte) error {
	if (op>>4)&0x01 == 0 {
		c.Bus.Write(c.bc(), c.A)
	} else {
		c.Bus.Write(c.de(), c.A)
	}
	return nil
}

// INX rp - Increment register pair; no flags
func inx(c *CPU, op byte) error {
	rp := bits.RegPairCode(op)
	c.setRP(rp, c.getRP(rp)+1)
	return nil
}

// INR r - Increment register; ZSPAC
func inr(c *CPU, op byte) error {
	r := bits.DestRegCode(op)
	c.setR(r, c.inr(c.getR(r)))
	return nil
}

// DCR r - Decrement register; ZSPAC
func dcr(c *CPU, op byte) error {
	r := bits.DestRegCode(op)
	c.setR(r, c.dcr(c.getR(r)))
	return nil
}

// MVI r,d8 - Move immediate to register
func mvi(c *CPU, op byte) error {
	c.setR(bits.DestRegCode(op), c.fetchByte())
	return nil
}

// RLC - Rotate A left
func rlcOp(c *CPU, op byte) error { c.rlc(); return nil }

// RRC - Rotate A right
func rrcOp(c *CPU, op byte) error { c.rrc(); return nil }

// RAL - Rotate A left through carry
func ralOp(c *CPU, op byte) error { c.ral(); return nil }

// RAR - Rotate A right through carry
func rarOp(c *CPU, op byte) error { c.rar(); return nil }

// DAD rp - Double add: HL += rp; CY only
func dad(c *CPU, op byte) error {
	c.dad(c.getRP(bits.RegPairCode(op)))
	return nil
}

// LDAX B/D - Load A indirect through BC or DE
func ldax(c *CPU, op byte) error {
	if (op>>4)&0x01 == 0 {
		c.A = c.Bus.Read(c.bc())
	} else {
		c.A = c.Bus.Read(c.de())
	}
	return nil
}

// DCX rp - Decrement register pair; no flags
func dcx(c *CPU, op byte) error {
	rp := bits.RegPairCode(op)
	c.setRP(rp, c.getRP(rp)-1)
	return nil
}

// SHLD a16 - Store HL direct
func shld(c *CPU, op byte) error {
	addr := c.fetchWord()
	c.Bus.Write(addr, c.L)
	c.Bus.Write(addr+1, c.H)
	return nil
}

// DAA - Decimal adjust accumulator
func daaOp(c *CPU, op byte) error { c.daa(); return nil }

// LHLD a16 - Load HL direct
func lhld(c *CPU, op byte) error {
	addr := c.fetchWord()
	c.L = c.Bus.Read(addr)
	c.H = c.Bus.Read(addr + 1)
	return nil
}

// CMA - Complement accumulator
func cma(c *CPU, op byte) error { c.A = ^c.A; return nil }

// STA a16 - Store A direct
func sta(c *CPU, op byte) error {
	c.Bus.Write(c.fetchWord(), c.A)
	return nil
}

// STC - Set carry
func stc(c *CPU, op byte) error { c.Flags.Carry = true; return nil }

// LDA a16 - Load A direct
func lda(c *CPU, op byte) error {
	c.A = c.Bus.Read(c.fetchWord())
	return nil
}

// CMC - Complement carry
func cmc(c *CPU, op byte) error { c.Flags.Carry = !c.Flags.Carry; return nil }

// MOV r1,r2 - Move register to register (or to/from M=HL)
func mov(c *CPU, op byte) error {
	c.setR(bits.DestRegCode(op), c.getR(bits.SrcRegCode(op)))
	return nil
}

// HLT - Halt
func hlt(c *CPU, op byte) error { c.Halt = true; return nil }

// ADD r - A += r
func addReg(c *CPU, op byte) error {
	c.A = c.add(c.A, c.getR(bits.SrcRegCode(op)), 0)
	return nil
}

// ADC r - A += r + CY
func adc(c *CPU, op byte) error {
	c.A = c.add(c.A, c.getR(bits.SrcRegCode(op)), carryBit(c))
	return nil
}

// SUB r - A -= r
func subReg(c *CPU, op byte) error {
	c.A = c.sub(c.A, c.getR(bits.SrcRegCode(op)), 0)
	return nil
}

// SBB r - A -= r + CY (borrow)
func sbb(c *CPU, op byte) error {
	c.A = c.sub(c.A, c.getR(bits.SrcRegCode(op)), carryBit(c))
	return nil
}

// ANA r - A &= r; CY=AC=0; ZSP
func ana(c *CPU, op byte) error {
	c.A = c.logicOp(c.A & c.getR(bits.SrcRegCode(op)))
	return nil
}

// XRA r - A ^= r; CY=AC=0; ZSP
func xra(c *CPU, op byte) error {
	c.A = c.logicOp(c.A ^ c.getR(bits.SrcRegCode(op)))
	return nil
}

// ORA r - A |= r; CY=AC=0; ZSP
func ora(c *CPU, op byte) error {
	c.A = c.logicOp(c.A | c.getR(bits.SrcRegCode(op)))
	return nil
}

// CMP r - Compare r with A; flags only
func cmp(c *CPU, op byte) error {
	c.sub(c.A, c.getR(bits.SrcRegCode(op)), 0)
	return nil
}

// Rccc - Conditional return
func rccc(c *CPU, op byte) error {
	if condTrue(c, bits.CondCode(op)) {
		c.PC = c.pop()
	}
	return nil
}

// RET - Unconditional return (0xC9 and the undocumented 0xD9 alias)
func ret(c *CPU, op byte) error {
	c.PC = c.pop()
	return nil
}

// POP rp/PSW - Pop register pair (or PSW for F1)
func pop(c *CPU, op byte) error {
	c.popPair(bits.RegPairCode(op))
	return nil
}

// Jccc a16 - Conditional jump; operand bytes are always consumed
func jccc(c *CPU, op byte) error {
	addr := c.fetchWord()
	if condTrue(c, bits.CondCode(op)) {
		c.PC = addr
	}
	return nil
}

// JMP a16 - Unconditional jump (0xC3 and the undocumented 0xCB alias)
func jmp(c *CPU, op byte) error {
	c.PC = c.fetchWord()
	return nil
}

// Cccc a16 - Conditional call; operand bytes are always consumed
func cccc(c *CPU, op byte) error {
	addr := c.fetchWord()
	if condTrue(c, bits.CondCode(op)) {
		c.push(c.PC)
		c.PC = addr
	}
	return nil
}

// PUSH rp/PSW - Push register pair (or PSW for F5)
func push(c *CPU, op byte) error {
	c.pushPair(bits.RegPairCode(op))
	return nil
}

// ADI d8 - A += immediate
func adi(c *CPU, op byte) error {
	c.A = c.add(c.A, c.fetchByte(), 0)
	return nil
}

// RST n - Push PC; PC = n*8, n = bits 5..3 of the opcode
func rst(c *CPU, op byte) error {
	n := bits.CondCode(op)
	c.push(c.PC)
	c.PC = uint16(n) * 8
	return nil
}

// CALL a16 - Push PC after operand bytes; PC = a16. 0xCD is the
// documented form; 0xDD/0xED/0xFD are undocumented aliases.
func call(c *CPU, op byte) error {
	addr := c.fetchWord()
	c.push(c.PC)
	c.PC = addr
	return nil
}

// ACI d8 - A += immediate + CY
func aci(c *CPU, op byte) error {
	c.A = c.add(c.A, c.fetchByte(), carryBit(c))
	return nil
}

// OUT port - Write A to an output port
func out(c *CPU, op byte) error {
	port := c.fetchByte()
	if err := c.Ports.Out(port, c.A); err != nil {
		return &ports.HostIOFailure{Port: port, Cause: err}
	}
	return nil
}

// SUI d8 - A -= immediate
func sui(c *CPU, op byte) error {
	c.A = c.sub(c.A, c.fetchByte(), 0)
	return nil
}

// IN port - Read an input port into A
func in(c *CPU, op byte) error {
	port := c.fetchByte()
	v, err := c.Ports.In(port)
	if err != nil {
		return &ports.HostIOFailure{Port: port, Cause: err}
	}
	c.A = v
	return nil
}

// SBI d8 - A -= immediate + CY
func sbi(c *CPU, op byte) error {
	c.A = c.sub(c.A, c.fetchByte(), carryBit(c))
	return nil
}

// XTHL - Exchange HL with the top of stack
func xthl(c *CPU, op byte) error {
	lo := c.Bus.Read(c.SP)
	hi := c.Bus.Read(c.SP + 1)
	c.Bus.Write(c.SP, c.L)
	c.Bus.Write(c.SP+1, c.H)
	c.L, c.H = lo, hi
	return nil
}

// ANI d8 - A &= immediate; CY=AC=0; ZSP
func ani(c *CPU, op byte) error {
	c.A = c.logicOp(c.A & c.fetchByte())
	return nil
}

// PCHL - PC = HL
func pchl(c *CPU, op byte) error { c.PC = c.hl(); return nil }

// XCHG - Exchange DE and HL
func xchg(c *CPU, op byte) error {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	return nil
}

// XRI d8 - A ^= immediate; CY=AC=0; ZSP
func xri(c *CPU, op byte) error {
	c.A = c.logicOp(c.A ^ c.fetchByte())
	return nil
}

// DI - Disable interrupts
func di(c *CPU, op byte) error { c.IntEnable = false; return nil }

// ORI d8 - A |= immediate; CY=AC=0; ZSP
func ori(c *CPU, op byte) error {
	c.A = c.logicOp(c.A | c.fetchByte())
	return nil
}

// SPHL - SP = HL
func sphl(c *CPU, op byte) error { c.SP = c.hl(); return nil }

// EI - Enable interrupts
func ei(c *CPU, op byte) error { c.IntEnable = true; return nil }

// CPI d8 - Compare immediate with A; flags only
func cpi(c *CPU, op byte) error {
	c.sub(c.A, c.fetchByte(), 0)
	return nil
}
