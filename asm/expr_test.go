package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEquates(t *testing.T) {
	assert := assert.New(t)

	words := []string{"addi", "x1,", "x0,", "COUNT"}
	substituteEquates(words, map[string]string{"COUNT": "10"})
	assert.Equal("10", words[3])
}

func TestExpandExpressions(t *testing.T) {
	assert := assert.New(t)

	out, err := expandExpressions("addi x1, x0, $(2 + 3)", nil)
	assert.NoError(err)
	assert.Equal("addi x1, x0, 5", out)
}

func TestExpandExpressionsWithEquate(t *testing.T) {
	assert := assert.New(t)

	out, err := expandExpressions("lui x1, $(BASE >> 12)", map[string]string{"BASE": "0x10000000"})
	assert.NoError(err)
	assert.Equal("lui x1, 65536", out)
}

func TestExpandExpressionsNoMatch(t *testing.T) {
	assert := assert.New(t)

	out, err := expandExpressions("addi x1, x0, 5", nil)
	assert.NoError(err)
	assert.Equal("addi x1, x0, 5", out)
}

func TestExpandExpressionsInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := expandExpressions("addi x1, x0, $(1 / 0)", nil)
	assert.Error(err)
}
