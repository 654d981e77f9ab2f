package asm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeR(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "add", Format: FormatR, Rd: "x1", Rs1: "x2", Rs2: "x3"})
	assert.NoError(err)
	assert.Equal(uint32(0x0031_00b3), word)

	word, err = Encode(Instruction{Opcode: "sub", Format: FormatR, Rd: "x1", Rs1: "x2", Rs2: "x3"})
	assert.NoError(err)
	assert.Equal(uint32(0x4031_00b3), word)
}

func TestEncodeIArith(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "addi", Format: FormatI, Rd: "x1", Rs1: "x2", Immediate: "5"})
	assert.NoError(err)
	assert.Equal(uint32(0x0051_0093), word)
}

func TestEncodeIShift(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "srai", Format: FormatI, Rd: "x1", Rs1: "x2", Immediate: "4"})
	assert.NoError(err)
	// funct7 0x20 in bits[11:5], shamt 4 in bits[4:0]
	assert.Equal(uint32(0x4041_5093), word)
}

func TestEncodeILoadOffsetBase(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "lw", Format: FormatI, Rd: "x5", Rs1: "x2", Immediate: "-4"})
	assert.NoError(err)
	assert.Equal(uint32(0xffc1_2283), word)
}

func TestEncodeS(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "sw", Rs1: "x2", Rs2: "x5", Immediate: "8"})
	assert.NoError(err)
	assert.Equal(uint32(0x0051_2423), word)
}

func TestEncodeSB(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "beq", Rs1: "x1", Rs2: "x2", Immediate: "-4"})
	assert.NoError(err)
	assert.NotZero(word)
	assert.Equal(uint32(opcodeSB), word&0x7f)
}

func TestEncodeU(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "lui", Format: FormatU, Rd: "x1", Immediate: "0x10"})
	assert.NoError(err)
	assert.Equal(uint32(0x0001_00b7), word)
}

func TestEncodeUJ(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Opcode: "jal", Format: FormatUJ, Rd: "x1", Immediate: "0"})
	assert.NoError(err)
	assert.Equal(uint32(opcodeJal), word&0x7f)
}

func TestEncodeHalt(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(Instruction{Format: FormatHalt})
	assert.NoError(err)
	assert.Equal(uint32(opcodeHalt), word)
}

func TestEncodeInvalidRegister(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(Instruction{Opcode: "add", Format: FormatR, Rd: "x99", Rs1: "x0", Rs2: "x0"})
	assert.Error(err)

	_, err = Encode(Instruction{Opcode: "add", Format: FormatR, Rd: "a0", Rs1: "x0", Rs2: "x0"})
	assert.Error(err)
}

func TestEncodeUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(Instruction{Opcode: "frobnicate", Format: FormatR})
	assert.Error(err)
}

func FuzzEncodeR(f *testing.F) {
	f.Add(uint8(1), uint8(2), uint8(3))
	f.Fuzz(func(t *testing.T, rd, rs1, rs2 uint8) {
		assert := assert.New(t)

		rd, rs1, rs2 = rd%32, rs1%32, rs2%32
		word, err := Encode(Instruction{
			Opcode: "add", Format: FormatR,
			Rd:  registerName(rd),
			Rs1: registerName(rs1),
			Rs2: registerName(rs2),
		})
		assert.NoError(err)
		assert.Equal(uint32(rd), (word>>7)&0x1f)
		assert.Equal(uint32(rs1), (word>>15)&0x1f)
		assert.Equal(uint32(rs2), (word>>20)&0x1f)
		assert.Equal(opcodeR, word&0x7f)
	})
}

func registerName(n uint8) string {
	return "x" + strconv.Itoa(int(n))
}
