package cpu

// An Opcode names a handler for one or more opcode bytes. Where the 8080
// encodes a register, register-pair, or condition code directly in the
// byte (MOV, the ALU r-forms, INR/DCR/MVI, LXI/INX/DCX/DAD,
// PUSH/POP/RST, and the conditional jump/call/return families), a single
// Opcode's Handler serves every byte in that family and re-extracts the
// field from the byte it's given; Opcodes is populated for those families
// by iterating the field's range, rather than by 256 literal entries.
type Opcode struct {
	Name    string
	Handler func(c *CPU, op byte) error
}

// Opcodes maps every opcode byte the 8080 defines to its handler. Bytes
// absent from this table are unimplemented; Step reports them via
// UnimplementedOpcode and continues.
var Opcodes = map[byte]Opcode{}

func register(op byte, name string, handler func(c *CPU, op byte) error) {
	Opcodes[op] = Opcode{Name: name, Handler: handler}
}

var regPairNames = [4]string{"B", "D", "H", "SP"}
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func init() {
	register(0x00, "NOP", nop)

	for rp := byte(0); rp < 4; rp++ {
		register(0x01|rp<<4, "LXI "+regPairNames[rp], lxi)
		register(0x03|rp<<4, "INX "+regPairNames[rp], inx)
		register(0x0B|rp<<4, "DCX "+regPairNames[rp], dcx)
		register(0x09|rp<<4, "DAD "+regPairNames[rp], dad)
	}
	for _, rp := range []byte{0, 1} {
		register(0x02|rp<<4, "STAX "+regPairNames[rp], stax)
		register(0x0A|rp<<4, "LDAX "+regPairNames[rp], ldax)
	}
	// PUSH/POP reuse the register-pair field, but code 3 means PSW.
	for rp := byte(0); rp < 4; rp++ {
		name := regPairNames[rp]
		if rp == 3 {
			name = "PSW"
		}
		register(0xC1|rp<<4, "POP "+name, pop)
		register(0xC5|rp<<4, "PUSH "+name, push)
	}

	for r := byte(0); r < 8; r++ {
		register(0x04|r<<3, "INR "+regNames[r], inr)
		register(0x05|r<<3, "DCR "+regNames[r], dcr)
		register(0x06|r<<3, "MVI "+regNames[r], mvi)
	}

	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			op := 0x40 | dst<<3 | src
			if op == 0x76 { // HLT occupies MOV M,M's slot
				continue
			}
			register(op, "MOV "+regNames[dst]+","+regNames[src], mov)
		}
	}
	register(0x76, "HLT", hlt)

	aluFamilies := []struct {
		base    byte
		name    string
		handler func(c *CPU, op byte) error
	}{
		{0x80, "ADD", addReg}, {0x88, "ADC", adc},
		{0x90, "SUB", subReg}, {0x98, "SBB", sbb},
		{0xA0, "ANA", ana}, {0xA8, "XRA", xra},
		{0xB0, "ORA", ora}, {0xB8, "CMP", cmp},
	}
	for _, f := range aluFamilies {
		for r := byte(0); r < 8; r++ {
			register(f.base|r, f.name+" "+regNames[r], f.handler)
		}
	}

	for ccc := byte(0); ccc < 8; ccc++ {
		register(0xC0|ccc<<3, "R"+condNames[ccc], rccc)
		register(0xC2|ccc<<3, "J"+condNames[ccc], jccc)
		register(0xC4|ccc<<3, "C"+condNames[ccc], cccc)
		register(0xC7|ccc<<3, "RST", rst)
	}

	register(0x07, "RLC", rlcOp)
	register(0x0F, "RRC", rrcOp)
	register(0x17, "RAL", ralOp)
	register(0x1F, "RAR", rarOp)

	register(0x22, "SHLD", shld)
	register(0x27, "DAA", daaOp)
	register(0x2A, "LHLD", lhld)
	register(0x2F, "CMA", cma)
	register(0x32, "STA", sta)
	register(0x37, "STC", stc)
	register(0x3A, "LDA", lda)
	register(0x3F, "CMC", cmc)

	register(0xC3, "JMP", jmp)
	register(0xCB, "JMP", jmp) // undocumented alias
	register(0xC9, "RET", ret)
	register(0xD9, "RET", ret) // undocumented alias
	register(0xCD, "CALL", call)
	register(0xDD, "CALL", call) // undocumented alias
	register(0xED, "CALL", call) // undocumented alias
	register(0xFD, "CALL", call) // undocumented alias

	register(0xC6, "ADI", adi)
	register(0xCE, "ACI", aci)
	register(0xD3, "OUT", out)
	register(0xD6, "SUI", sui)
	register(0xDB, "IN", in)
	register(0xDE, "SBI", sbi)
	register(0xE3, "XTHL", xthl)
	register(0xE6, "ANI", ani)
	register(0xE9, "PCHL", pchl)
	register(0xEB, "XCHG", xchg)
	register(0xEE, "XRI", xri)
	register(0xF3, "DI", di)
	register(0xF6, "ORI", ori)
	register(0xF9, "SPHL", sphl)
	register(0xFB, "EI", ei)
	register(0xFE, "CPI", cpi)
}
