// Package vm implements the single-cycle interpreter: instruction fetch
// from a code map, field decode, ALU/branch/memory dispatch, writeback,
// and PC update, driven one cycle at a time until halt, end-of-program,
// or a fatal decode.
package vm
