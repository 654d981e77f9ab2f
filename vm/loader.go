package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rv32kit/rv32kit/symtab"
)

// Load populates a machine's code map from an assembler listing and its
// memory from a symbol table's data segments. The listing's data lines
// are read into Code alongside instruction lines — the interpreter
// relies only on the first two whitespace-separated hex tokens of each
// line, and a data line's address is never visited by PC, so this is
// harmless — while data content itself is loaded from the symbol
// table's typed entries, not re-parsed from listing text.
func Load(m *Machine, listing io.Reader, symbols *symtab.Table) error {
	scanner := bufio.NewScanner(listing)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		addr, err := strconv.ParseUint(fields[0], 0, 32)
		if err != nil {
			continue
		}
		word, err := strconv.ParseUint(fields[1], 0, 32)
		if err != nil {
			continue
		}
		m.Code[uint32(addr)] = uint32(word)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for addr, entry := range symbols.AllEntries() {
		m.Mem.LoadDataEntry(addr, entry.Value, entry.Size)
	}

	return nil
}
