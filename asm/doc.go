// Package asm implements the two-pass symbolic assembler: lexing of the
// line-oriented assembly dialect, label and data-segment resolution via
// symtab, and bitfield encoding of instructions into 32-bit machine
// words.
package asm
