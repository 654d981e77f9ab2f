package vm

import (
	"fmt"
	"io"
	"slices"
)

// Memory is a word-granular sparse map; absent keys read as zero. lw/ld
// and sw/sd key directly by the address the instruction computed,
// aligned or not; lb/lh/sb/sh key by the word-aligned address and
// address the sub-word lane by shift. This mismatch is a deliberate
// compatibility quirk, not a bug: see DESIGN.md.
type Memory map[uint32]uint32

// NewMemory creates an empty memory map.
func NewMemory() Memory {
	return make(Memory)
}

// LoadWord returns the word stored at addr exactly as keyed, with no
// alignment applied. Used by lw and ld.
func (m Memory) LoadWord(addr uint32) uint32 {
	return m[addr]
}

// StoreWord stores value at addr exactly as keyed, with no alignment
// applied. Used by sw and sd.
func (m Memory) StoreWord(addr uint32, value uint32) {
	m[addr] = value
}

// LoadByte extracts the byte lane at addr from its word-aligned slot,
// sign-extending when signed is set. Used by lb/lbu.
func (m Memory) LoadByte(addr uint32, signed bool) int32 {
	aligned := addr &^ 0x3
	shift := (addr & 3) * 8
	b := uint8(m[aligned] >> shift)
	if signed {
		return int32(int8(b))
	}
	return int32(b)
}

// StoreByte writes the low byte of value into addr's word-aligned slot,
// leaving the other three bytes untouched. Used by sb.
func (m Memory) StoreByte(addr uint32, value uint32) {
	aligned := addr &^ 0x3
	shift := (addr & 3) * 8
	word := m[aligned]
	word = (word &^ (0xFF << shift)) | ((value & 0xFF) << shift)
	m[aligned] = word
}

// LoadHalf extracts the halfword lane at addr from its word-aligned
// slot, sign-extending when signed is set. Used by lh/lhu.
func (m Memory) LoadHalf(addr uint32, signed bool) int32 {
	aligned := addr &^ 0x3
	shift := (addr & 2) * 8
	h := uint16(m[aligned] >> shift)
	if signed {
		return int32(int16(h))
	}
	return int32(h)
}

// StoreHalf writes the low halfword of value into addr's word-aligned
// slot, leaving the other half untouched. Used by sh.
func (m Memory) StoreHalf(addr uint32, value uint32) {
	aligned := addr &^ 0x3
	shift := (addr & 2) * 8
	word := m[aligned]
	word = (word &^ (0xFFFF << shift)) | ((value & 0xFFFF) << shift)
	m[aligned] = word
}

// LoadDataEntry unpacks a data segment entry's value into its
// word-aligned slots, byte by byte and little-endian, per spec's data
// segment layout.
func (m Memory) LoadDataEntry(addr uint32, value int64, size uint32) {
	for i := uint32(0); i < size; i++ {
		b := uint32(value>>(i*8)) & 0xFF
		m.StoreByte(addr+i, b)
	}
}

// Dump writes every populated word, sorted by address, in the memory
// dump file's textual format.
func (m Memory) Dump(w io.Writer) error {
	addrs := make([]uint32, 0, len(m))
	for addr := range m {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)

	for _, addr := range addrs {
		if _, err := fmt.Fprintf(w, "0x%x 0x%08x\n", addr, m[addr]); err != nil {
			return err
		}
	}
	return nil
}
