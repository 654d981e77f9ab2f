package asm

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/rv32kit/rv32kit/symtab"
)

// pending is an instruction record collected during the scan, together
// with a label name if its immediate could not yet be resolved.
type pending struct {
	Instruction
	linkLabel string
}

// Parser is the assembler's lexer/front end. spec.md calls for a
// literal two-pass scan of the source (labels and data on pass one,
// instructions with resolved branch/jump immediates on pass two) to
// handle forward references. This implementation takes the equivalent
// single-pass-plus-patch-list route spec.md's design notes call out:
// it scans the source exactly once, recording label addresses and
// instructions as it goes, and leaves every SB/UJ immediate that names a
// label, seen or not, as a pending patch. A final linking pass, run once
// the whole file has been scanned, resolves every pending patch against
// the now-complete symbol table. Both designs reject the same programs
// and produce the same addresses.
type Parser struct {
	Verbose bool // if set, logs each source line as it is scanned

	// Equate holds .equ NAME VALUE definitions, textually substituted
	// into later tokens, and made available to $(...) expressions.
	Equate map[string]string

	symbols     *symtab.Table
	pendings    []pending
	textAddress uint32
	dataAddress uint32
}

// NewParser creates an assembler front end with an empty equate table.
func NewParser() *Parser {
	return &Parser{
		Equate: make(map[string]string),
	}
}

// Parse scans source and returns the populated symbol table together
// with the ordered, fully-resolved instruction list.
func (p *Parser) Parse(source io.Reader) (*symtab.Table, []Instruction, error) {
	p.symbols = symtab.New()
	p.pendings = nil
	p.textAddress = 0
	p.dataAddress = symtab.DataAddress

	scanner := bufio.NewScanner(source)

	var lineno int
	var line string

	for scanner.Scan() {
		lineno++
		raw := scanner.Text()

		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		line = strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if p.Verbose {
			log.Printf("asm: %d: %v", lineno, line)
		}

		if err := p.parseLine(line, lineno); err != nil {
			return nil, nil, &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	instrs, err := p.link()
	if err != nil {
		return nil, nil, err
	}

	return p.symbols, instrs, nil
}

// parseLine processes one comment-stripped, trimmed, non-empty line.
func (p *Parser) parseLine(line string, lineno int) error {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		label := strings.TrimSpace(line[:idx])
		if label == "" || (label[0] >= '0' && label[0] <= '9') {
			return ErrLabelInvalid(label)
		}
		rest := strings.TrimSpace(line[idx+1:])

		addr := p.textAddress
		if strings.HasPrefix(rest, ".") {
			addr = p.dataAddress
		}
		if err := p.symbols.AddLabel(label, addr); err != nil {
			return err
		}

		line = rest
	}
	if line == "" {
		return nil
	}

	// .asciiz strings carry embedded whitespace; handle before any
	// whitespace-based tokenization or substitution touches them.
	if strings.HasPrefix(line, ".asciiz") {
		return p.parseAsciiz(line)
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	if words[0] == ".equ" {
		if len(words) != 3 {
			return ErrEquateSyntax
		}
		if _, ok := p.Equate[words[1]]; ok {
			return ErrEquateDuplicate
		}
		p.Equate[words[1]] = words[2]
		return nil
	}

	substituteEquates(words, p.Equate)
	expanded, err := expandExpressions(strings.Join(words, " "), p.Equate)
	if err != nil {
		return err
	}
	words = strings.Fields(expanded)
	if len(words) == 0 {
		return nil
	}

	if strings.HasPrefix(words[0], ".") {
		return p.parseDirective(words)
	}

	return p.parseInstruction(words, line, lineno)
}

// parseDirective processes a directive whose first token begins with
// '.'. Directives never advance the text address.
func (p *Parser) parseDirective(words []string) error {
	directive := words[0]
	args := stripCommas(words[1:])

	switch directive {
	case ".text":
		// no data effect
	case ".data":
		p.symbols.OpenSegment(p.dataAddress)
	case ".word":
		return p.appendValues(args, 4, -1)
	case ".half":
		return p.appendValues(args, 2, 0xFFFF)
	case ".byte":
		return p.appendValues(args, 1, 0xFF)
	case ".dword":
		return p.appendValues(args, 8, -1)
	case ".globl":
		if len(args) != 1 {
			return ErrDirectiveMissing
		}
		p.symbols.AddGlobal(args[0])
	default:
		return ErrDirectiveInvalid(directive)
	}
	return nil
}

// appendValues parses each value token and appends it to the current
// data segment, masking to width when mask is non-negative.
func (p *Parser) appendValues(args []string, size uint32, mask int64) error {
	if len(args) == 0 {
		return ErrDirectiveMissing
	}
	for _, tok := range args {
		v, err := parseImmediate(tok)
		if err != nil {
			return err
		}
		v &= mask
		p.symbols.AppendDataEntry(&p.dataAddress, v, size)
	}
	return nil
}

// parseAsciiz appends one byte per character of a double-quoted string
// literal, followed by a null terminator. Escapes are not supported.
func (p *Parser) parseAsciiz(line string) error {
	rest := strings.TrimSpace(line[len(".asciiz"):])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return ErrStringUnquoted
	}
	content := rest[1 : len(rest)-1]
	for i := 0; i < len(content); i++ {
		p.symbols.AppendDataEntry(&p.dataAddress, int64(content[i]), 1)
	}
	p.symbols.AppendDataEntry(&p.dataAddress, 0, 1)
	return nil
}

// parseInstruction parses the operands of an instruction line according
// to its mnemonic's format, and queues it for linking.
func (p *Parser) parseInstruction(words []string, sourceLine string, lineno int) error {
	mnemonic := words[0]
	args := stripCommas(words[1:])

	p.textAddress += 4

	if mnemonic == "halt" {
		if len(args) != 0 {
			return ErrOperandExtra
		}
		p.pendings = append(p.pendings, pending{
			Instruction: Instruction{Opcode: "halt", Format: FormatHalt, LineText: sourceLine, LineNo: lineno},
		})
		return nil
	}

	info, ok := mnemonics[mnemonic]
	if !ok {
		return ErrOpcodeInvalid(mnemonic)
	}

	ins := Instruction{Opcode: mnemonic, Format: info.Format, LineText: sourceLine, LineNo: lineno}
	var linkLabel string

	switch info.Format {
	case FormatR:
		if len(args) < 3 {
			return ErrOperandMissing
		}
		if len(args) > 3 {
			return ErrOperandExtra
		}
		ins.Rd, ins.Rs1, ins.Rs2 = args[0], args[1], args[2]

	case FormatI:
		switch mnemonic {
		case "lb", "lh", "lw", "ld", "lbu", "lhu":
			if len(args) < 2 {
				return ErrOperandMissing
			}
			if len(args) > 2 {
				return ErrOperandExtra
			}
			ins.Rd = args[0]
			imm, base, err := splitOffsetBase(args[1])
			if err != nil {
				return err
			}
			ins.Immediate, ins.Rs1 = imm, base
		default: // addi, andi, ori, jalr, slti, sltiu, xori, slli, srli, srai
			if len(args) < 3 {
				return ErrOperandMissing
			}
			if len(args) > 3 {
				return ErrOperandExtra
			}
			ins.Rd, ins.Rs1, ins.Immediate = args[0], args[1], args[2]
		}

	case FormatS:
		if len(args) < 2 {
			return ErrOperandMissing
		}
		if len(args) > 2 {
			return ErrOperandExtra
		}
		ins.Rs2 = args[0]
		imm, base, err := splitOffsetBase(args[1])
		if err != nil {
			return err
		}
		ins.Immediate, ins.Rs1 = imm, base

	case FormatSB:
		if len(args) < 3 {
			return ErrOperandMissing
		}
		if len(args) > 3 {
			return ErrOperandExtra
		}
		ins.Rs1, ins.Rs2 = args[0], args[1]
		if tok := args[2]; isLabelToken(tok) {
			linkLabel = tok
		} else {
			ins.Immediate = tok
		}

	case FormatU:
		if len(args) < 2 {
			return ErrOperandMissing
		}
		if len(args) > 2 {
			return ErrOperandExtra
		}
		ins.Rd = args[0]
		v, err := parseImmediate(args[1])
		if err != nil {
			return err
		}
		ins.Immediate = strconv.FormatInt(v, 10)

	case FormatUJ:
		if len(args) < 2 {
			return ErrOperandMissing
		}
		if len(args) > 2 {
			return ErrOperandExtra
		}
		ins.Rd = args[0]
		if tok := args[1]; isLabelToken(tok) {
			linkLabel = tok
		} else {
			ins.Immediate = tok
		}
	}

	p.pendings = append(p.pendings, pending{Instruction: ins, linkLabel: linkLabel})
	return nil
}

// link resolves every pending SB/UJ label reference against the now
// fully-populated symbol table, computing label_addr - current_ip per
// spec.md's immediate reconstruction rule.
func (p *Parser) link() ([]Instruction, error) {
	instrs := make([]Instruction, len(p.pendings))
	for i, pend := range p.pendings {
		ins := pend.Instruction
		if pend.linkLabel != "" {
			ip := uint32(i * 4)
			addr := p.symbols.Lookup(pend.linkLabel)
			if addr == symtab.NotFound {
				return nil, &ErrSyntax{LineNo: ins.LineNo, Line: ins.LineText, Err: ErrLabelMissing(pend.linkLabel)}
			}
			offset := int64(int32(addr) - int32(ip))
			ins.Immediate = strconv.FormatInt(offset, 10)
		}
		instrs[i] = ins
	}
	return instrs, nil
}

// stripCommas removes a single trailing comma from each operand, per
// spec.md's tolerance for comma-separated operand lists.
func stripCommas(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strings.TrimSuffix(a, ",")
	}
	return out
}

// splitOffsetBase parses the "offset(base)" load/store address syntax.
func splitOffsetBase(tok string) (imm, base string, err error) {
	open := strings.IndexByte(tok, '(')
	closeParen := strings.IndexByte(tok, ')')
	if open < 0 || closeParen < 0 || closeParen < open {
		return "", "", ErrOffsetSyntax
	}
	imm = tok[:open]
	if imm == "" {
		imm = "0"
	}
	base = tok[open+1 : closeParen]
	return imm, base, nil
}

// isLabelToken reports whether tok is a non-numeric identifier, and so
// must be resolved as a label rather than parsed as a literal.
func isLabelToken(tok string) bool {
	_, err := strconv.ParseInt(tok, 0, 64)
	return err != nil
}
