package vm

// Decoded holds every field extracted from a fetched instruction word,
// with the immediate already reconstructed and sign-extended per its
// format's rule.
type Decoded struct {
	Opcode uint32
	Rd     uint32
	Funct3 uint32
	Rs1    uint32
	Rs2    uint32
	Funct7 uint32
	Imm    int32
}

// Decode extracts every field of ir. The immediate is computed by the
// class matching ir's opcode; opcodes with no immediate (R-format,
// halt) leave Imm at zero.
func Decode(ir uint32) Decoded {
	d := Decoded{
		Opcode: ir & 0x7F,
		Rd:     (ir >> 7) & 0x1F,
		Funct3: (ir >> 12) & 0x7,
		Rs1:    (ir >> 15) & 0x1F,
		Rs2:    (ir >> 20) & 0x1F,
		Funct7: (ir >> 25) & 0x7F,
	}

	switch d.Opcode {
	case OpIArith, OpILoad, OpJalr:
		d.Imm = int32(ir) >> 20
	case OpS:
		uimm := (((ir >> 25) & 0x7F) << 5) | ((ir >> 7) & 0x1F)
		d.Imm = signExtend(uimm, 12)
	case OpSB:
		bit12 := (ir >> 31) & 0x1
		bit11 := (ir >> 7) & 0x1
		bits10_5 := (ir >> 25) & 0x3F
		bits4_1 := (ir >> 8) & 0xF
		uimm := bit12<<12 | bit11<<11 | bits10_5<<5 | bits4_1<<1
		d.Imm = signExtend(uimm, 13)
	case OpLui, OpAuipc:
		d.Imm = int32(ir & 0xFFFFF000)
	case OpJal:
		bit20 := (ir >> 31) & 0x1
		bits19_12 := (ir >> 12) & 0xFF
		bit11 := (ir >> 20) & 0x1
		bits10_1 := (ir >> 21) & 0x3FF
		uimm := bit20<<20 | bits19_12<<12 | bit11<<11 | bits10_1<<1
		d.Imm = signExtend(uimm, 21)
	}

	return d
}

// signExtend interprets the low `bits` bits of value as a two's
// complement signed integer.
func signExtend(value uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(value<<shift) >> shift
}
