package vm

import (
	"errors"

	"github.com/rv32kit/rv32kit/translate"
)

var f = translate.From

var (
	// ErrOpcodeUnknown is returned by Step when IR decodes to an opcode
	// this machine does not implement.
	ErrOpcodeUnknown = errors.New(f("unknown opcode"))
)

// ErrRuntime annotates a Step failure with the program counter it
// occurred at.
type ErrRuntime struct {
	PC  uint32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%x: %v", err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
