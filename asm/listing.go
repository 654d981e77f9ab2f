package asm

import (
	"fmt"
	"io"

	"github.com/rv32kit/rv32kit/symtab"
)

// Emit serializes every data entry across every segment, in address
// order, followed by every instruction starting at address 0, into the
// assembler's intermediate .mc listing format. This is the assembler's
// only output and the interpreter's only input.
func Emit(w io.Writer, symbols *symtab.Table, instrs []Instruction) error {
	for addr, entry := range symbols.AllEntries() {
		width := int(entry.Size * 2)
		mask := uint64(1)<<(entry.Size*8) - 1
		value := uint64(entry.Value) & mask
		if _, err := fmt.Fprintf(w, "0x%x 0x%0*x # Data\n", addr, width, value); err != nil {
			return err
		}
	}

	for i, ins := range instrs {
		addr := uint32(i * 4)
		word, err := Encode(ins)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "0x%x 0x%08x , %v # %v\n", addr, word, ins.LineText, fingerprint(ins)); err != nil {
			return err
		}
	}
	return nil
}

// fingerprint renders the opcode-funct3-funct7-rd-rs1-rs2-imm debug tag
// appended as a listing comment.
func fingerprint(ins Instruction) string {
	if ins.Format == FormatHalt {
		return "halt-0-0-0-0-0-0"
	}
	info := mnemonics[ins.Opcode]
	return fmt.Sprintf("%v-%v-%v-%v-%v-%v-%v", ins.Opcode, info.Funct3, info.Funct7, ins.Rd, ins.Rs1, ins.Rs2, ins.Immediate)
}
