package asm

import (
	"errors"

	"github.com/rv32kit/rv32kit/translate"
)

var f = translate.From

var (
	// Lex/parse errors
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
	ErrOffsetSyntax     = errors.New(f("malformed offset(base) operand"))
	ErrDirectiveMissing = errors.New(f("directive value missing"))
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrStringUnquoted   = errors.New(f(".asciiz string is not quoted"))
)

// ErrLabelInvalid reports a label whose first character is a digit.
type ErrLabelInvalid string

func (e ErrLabelInvalid) Error() string {
	return f("label %v is invalid: cannot start with a digit", string(e))
}

// ErrLabelMissing reports an SB/UJ immediate that references an
// undefined label.
type ErrLabelMissing string

func (e ErrLabelMissing) Error() string {
	return f("label %v not found", string(e))
}

// ErrOpcodeInvalid reports an unrecognized mnemonic.
type ErrOpcodeInvalid string

func (e ErrOpcodeInvalid) Error() string {
	return f("opcode %v invalid", string(e))
}

// ErrDirectiveInvalid reports an unrecognized directive.
type ErrDirectiveInvalid string

func (e ErrDirectiveInvalid) Error() string {
	return f("directive %v invalid", string(e))
}

// ErrRegisterInvalid reports a malformed or out-of-range register name.
type ErrRegisterInvalid string

func (e ErrRegisterInvalid) Error() string {
	return f("register %v invalid", string(e))
}

// ErrImmediateSyntax reports a value that could not be parsed as a
// decimal or hex literal.
type ErrImmediateSyntax string

func (e ErrImmediateSyntax) Error() string {
	return f("%v is not a number", string(e))
}

// ErrExpressionInvalid reports a $(...) expression that failed to
// evaluate to an integer.
type ErrExpressionInvalid string

func (e ErrExpressionInvalid) Error() string {
	return f("$(%v) is not a valid expression", string(e))
}

// ErrSyntax annotates any error with the source line it occurred on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (e *ErrSyntax) Error() string {
	return f("line %d '%v': %v", e.LineNo, e.Line, e.Err)
}

func (e *ErrSyntax) Unwrap() error {
	return e.Err
}
