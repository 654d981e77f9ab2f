package symtab

import (
	"github.com/rv32kit/rv32kit/translate"
)

var f = translate.From

// ErrLabelDuplicate reports a label defined more than once.
type ErrLabelDuplicate string

func (e ErrLabelDuplicate) Error() string {
	return f("label %v already defined", string(e))
}
