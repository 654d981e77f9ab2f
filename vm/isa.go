package vm

// Opcode field values (bits [6:0] of the fetched word). Mirrors
// asm's opcode map; duplicated here since the interpreter consumes raw
// machine words from a listing and has no assembler dependency.
const (
	OpR      = uint32(0x33)
	OpIArith = uint32(0x13)
	OpILoad  = uint32(0x03)
	OpJalr   = uint32(0x67)
	OpS      = uint32(0x23)
	OpSB     = uint32(0x63)
	OpLui    = uint32(0x37)
	OpAuipc  = uint32(0x17)
	OpJal    = uint32(0x6F)
	OpHalt   = uint32(0x7F)
)
