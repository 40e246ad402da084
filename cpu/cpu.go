// Package cpu implements the Intel 8080 8-bit microprocessor: registers,
// flags, ALU, and the fetch-decode-execute loop over a flat 64 KiB address
// space.
package cpu

import (
	"context"
	"errors"
	"fmt"

	"i8080/bits"
	"i8080/mem"
	"i8080/ports"
)

// Flags holds the five condition bits the 8080 updates after arithmetic and
// logical operations.
type Flags struct {
	Sign     bool // bit 7 of the last result
	Zero     bool // result == 0
	AuxCarry bool // carry out of bit 3 (BCD half-carry)
	Parity   bool // even number of set bits in the low byte
	Carry    bool // carry/borrow out of bit 7
}

// CPU is the complete architectural state of an 8080: the seven 8-bit
// registers, SP, PC, the five flags, the HALT and interrupt-enable
// latches, and the memory bus they operate on.
type CPU struct {
	Bus   *mem.Bus
	Ports ports.Handler

	A, B, C, D, E, H, L byte
	SP, PC              uint16
	Flags               Flags

	Halt      bool // set by HLT; Run exits when true
	IntEnable bool // set by EI, cleared by DI; no interrupt is delivered by the core
}

// State is a read-only snapshot of CPU, safe to copy, print, or compare in
// tests without aliasing the live processor.
type State struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16
	Flags               Flags
	Halt                bool
	IntEnable           bool
}

// New returns an initialized, all-zero CPU wired to a fresh bus and the
// null (no-op) port handler.
func New() *CPU {
	return &CPU{
		Bus:   &mem.Bus{},
		Ports: ports.Null{},
	}
}

// Load copies image into the bus at offset.
func (c *CPU) Load(image []byte, offset uint16) error {
	return c.Bus.LoadImage(image, offset)
}

// Snapshot returns a read-only copy of the processor's architectural state.
func (c *CPU) Snapshot() State {
	return State{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		Flags:     c.Flags,
		Halt:      c.Halt,
		IntEnable: c.IntEnable,
	}
}

// fetchByte reads the byte at PC and advances PC, wrapping modulo 65536.
func (c *CPU) fetchByte() byte {
	b := c.Bus.Read(c.PC)
	c.PC++
	return b
}

// fetchWord reads a little-endian word starting at PC and advances PC by 2.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return bits.Word(hi, lo)
}

// getR returns the value of the 3-bit-coded register (code 6 dereferences
// HL, per the 8080's register-code mapping).
func (c *CPU) getR(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Bus.Read(c.hl())
	default:
		return c.A
	}
}

// setR writes value to the 3-bit-coded register (code 6 writes memory at
// HL).
func (c *CPU) setR(code byte, value byte) {
	switch code {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.Bus.Write(c.hl(), value)
	default:
		c.A = value
	}
}

func (c *CPU) bc() uint16 { return bits.Word(c.B, c.C) }
func (c *CPU) de() uint16 { return bits.Word(c.D, c.E) }
func (c *CPU) hl() uint16 { return bits.Word(c.H, c.L) }

func (c *CPU) setBC(v uint16) { c.B, c.C = byte(v>>8), byte(v) }
func (c *CPU) setDE(v uint16) { c.D, c.E = byte(v>>8), byte(v) }
func (c *CPU) setHL(v uint16) { c.H, c.L = byte(v>>8), byte(v) }

// getRP returns the 16-bit value of the 2-bit-coded register pair: 0=BC,
// 1=DE, 2=HL, 3=SP.
func (c *CPU) getRP(code byte) uint16 {
	switch code {
	case 0:
		return c.bc()
	case 1:
		return c.de()
	case 2:
		return c.hl()
	default:
		return c.SP
	}
}

// setRP writes the 16-bit value of the 2-bit-coded register pair.
func (c *CPU) setRP(code byte, value uint16) {
	switch code {
	case 0:
		c.setBC(value)
	case 1:
		c.setDE(value)
	case 2:
		c.setHL(value)
	default:
		c.SP = value
	}
}

// psw packs A and the flags into the PSW byte: S Z 0 AC 0 P 1 CY (bit 7
// down to bit 0). Bits 1, 3, 5 are fixed at 1, 0, 0.
func (c *CPU) psw() byte {
	var f byte
	if c.Flags.Sign {
		f |= 1 << 7
	}
	if c.Flags.Zero {
		f |= 1 << 6
	}
	if c.Flags.AuxCarry {
		f |= 1 << 4
	}
	if c.Flags.Parity {
		f |= 1 << 2
	}
	f |= 1 << 1 // fixed
	if c.Flags.Carry {
		f |= 1 << 0
	}
	return f
}

// setPSW unpacks a PSW byte into the flags (A is set separately by the
// caller, since PUSH/POP PSW transfer A alongside the flags byte).
func (c *CPU) setPSW(f byte) {
	c.Flags.Sign = f&(1<<7) != 0
	c.Flags.Zero = f&(1<<6) != 0
	c.Flags.AuxCarry = f&(1<<4) != 0
	c.Flags.Parity = f&(1<<2) != 0
	c.Flags.Carry = f&(1<<0) != 0
}

// push writes a 16-bit value to the stack: high byte at SP-1, low byte at
// SP-2, then SP -= 2.
func (c *CPU) push(v uint16) {
	c.Bus.Write(c.SP-1, byte(v>>8))
	c.Bus.Write(c.SP-2, byte(v))
	c.SP -= 2
}

// pop reads a 16-bit value off the stack: low byte at SP, high byte at
// SP+1, then SP += 2.
func (c *CPU) pop() uint16 {
	lo := c.Bus.Read(c.SP)
	hi := c.Bus.Read(c.SP + 1)
	c.SP += 2
	return bits.Word(hi, lo)
}

// Step fetches, decodes, and executes a single instruction. An
// UnimplementedOpcode is returned (wrapped) for an out-of-table opcode
// byte; PC has already advanced past it, and the caller may safely call
// Step again.
func (c *CPU) Step() error {
	pc := c.PC
	op := c.fetchByte()
	oc, ok := Opcodes[op]
	if !ok {
		return fmt.Errorf("step at 0x%04x: %w", pc, &UnimplementedOpcode{Opcode: op, PC: pc})
	}
	return oc.Handler(c, op)
}

// Run executes instructions until HALT is set or ctx is cancelled.
// UnimplementedOpcode errors are non-fatal: Run reports them to onError (if
// non-nil) and continues; a HostIOFailure from a port handler, or a
// cancelled context, stops the loop and is returned.
func (c *CPU) Run(ctx context.Context, onError func(error)) error {
	for !c.Halt {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.Step()
		if err == nil {
			continue
		}
		var unimpl *UnimplementedOpcode
		if errors.As(err, &unimpl) {
			if onError != nil {
				onError(err)
			}
			continue
		}
		return err
	}
	return nil
}
