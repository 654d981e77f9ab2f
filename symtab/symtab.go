package symtab

import (
	"iter"

	"github.com/rv32kit/rv32kit/internal/iterutil"
)

// NotFound is the sentinel address returned by Lookup when a label is
// not bound. It is not a valid address for any label, data entry, or
// instruction produced by this toolchain.
const NotFound = ^uint32(0)

// DataAddress is where the data cursor starts before any .data
// directive has run.
const DataAddress = 0x10000000

// DataEntry is a single value emitted by a .word/.half/.byte/.dword/
// .asciiz directive.
type DataEntry struct {
	Value int64
	Size  uint32
}

// DataSegment is a contiguous run of data entries starting at
// StartAddress.
type DataSegment struct {
	StartAddress uint32
	Contents     []DataEntry
}

// Entries iterates the segment's entries paired with their address.
func (seg *DataSegment) Entries() iter.Seq2[uint32, DataEntry] {
	return func(yield func(uint32, DataEntry) bool) {
		addr := seg.StartAddress
		for _, entry := range seg.Contents {
			if !yield(addr, entry) {
				return
			}
			addr += entry.Size
		}
	}
}

// Table holds label bindings and the ordered data segments assembled
// from a source file.
type Table struct {
	labels       map[string]uint32
	DataSegments []DataSegment
	Globals      map[string]bool
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{
		labels:  make(map[string]uint32),
		Globals: make(map[string]bool),
	}
}

// Reset clears all labels and data segments, for reuse across passes.
func (t *Table) Reset() {
	clear(t.labels)
	t.DataSegments = t.DataSegments[:0]
	clear(t.Globals)
}

// AddLabel binds name to addr. Redefining a label is a fatal error.
func (t *Table) AddLabel(name string, addr uint32) error {
	if _, ok := t.labels[name]; ok {
		return ErrLabelDuplicate(name)
	}
	t.labels[name] = addr
	return nil
}

// Lookup returns the address bound to name, or NotFound.
func (t *Table) Lookup(name string) uint32 {
	addr, ok := t.labels[name]
	if !ok {
		return NotFound
	}
	return addr
}

// AddGlobal records a .globl symbol. It has no effect on assembly or
// execution; downstream linking is out of scope.
func (t *Table) AddGlobal(name string) {
	t.Globals[name] = true
}

// OpenSegment starts a new, empty data segment at start. Used for
// .data directives, which always open a fresh segment even if one is
// already open.
func (t *Table) OpenSegment(start uint32) {
	t.DataSegments = append(t.DataSegments, DataSegment{StartAddress: start})
}

// AppendDataEntry appends value/size to the currently open segment,
// opening one at *cursor if none exists, then advances *cursor by
// size.
func (t *Table) AppendDataEntry(cursor *uint32, value int64, size uint32) {
	if len(t.DataSegments) == 0 {
		t.OpenSegment(*cursor)
	}
	seg := &t.DataSegments[len(t.DataSegments)-1]
	seg.Contents = append(seg.Contents, DataEntry{Value: value, Size: size})
	*cursor += size
}

// AllEntries iterates every data entry across every segment, in
// segment then address order.
func (t *Table) AllEntries() iter.Seq2[uint32, DataEntry] {
	seqs := make([]iter.Seq2[uint32, DataEntry], len(t.DataSegments))
	for n := range t.DataSegments {
		seqs[n] = t.DataSegments[n].Entries()
	}
	return iterutil.Seq2Concat(seqs...)
}
