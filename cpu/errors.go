package cpu

import "fmt"

// UnimplementedOpcode is returned by Step when the decoder encounters a
// byte with no handler in Opcodes. It is the only recoverable condition the
// core reports: PC has already advanced past the offending byte, so the
// caller may continue stepping.
type UnimplementedOpcode struct {
	Opcode byte
	PC     uint16
}

func (e *UnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented instruction: opcode 0x%02x at 0x%04x", e.Opcode, e.PC)
}
