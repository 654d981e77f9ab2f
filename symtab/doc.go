// Package symtab holds the assembler's cross-reference state: label to
// address bindings, and the ordered data segments produced by .data
// directives.
package symtab
