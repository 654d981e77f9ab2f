package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenExpr matches a $(...) compile-time expression token.
var parenExpr = regexp.MustCompile(`\$\([^$]*\)`)

// substituteEquates replaces every whole-token match of an .equ name
// with its defined value, mirroring the token-substitution step of
// cpu/assembler.go's parseLine.
func substituteEquates(words []string, equates map[string]string) {
	for n, word := range words {
		if value, ok := equates[word]; ok {
			words[n] = value
		}
	}
}

// expandExpressions replaces every $(...) substring of line with the
// decimal value of evaluating its Starlark expression against the
// current equate table. Equates that are not themselves integers are
// silently unavailable to expressions (they may be labels or registers).
func expandExpressions(line string, equates map[string]string) (string, error) {
	var evalErr error
	out := parenExpr.ReplaceAllStringFunc(line, func(match string) string {
		expr := match[2 : len(match)-1]
		value, err := evalExpr(expr, equates)
		if err != nil {
			evalErr = err
			return match
		}
		return strconv.FormatInt(value, 10)
	})
	if evalErr != nil {
		return "", evalErr
	}
	return out, nil
}

// evalExpr evaluates a single Starlark expression against predefined
// integer equates, returning its integer result.
func evalExpr(expr string, equates map[string]string) (int64, error) {
	thread := &starlark.Thread{}
	opts := syntax.FileOptions{}

	predeclared := starlark.StringDict{}
	for name, text := range equates {
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			continue // not an integer equate; unavailable to expressions
		}
		predeclared[name] = starlark.MakeInt64(v)
	}

	program := "__result__ = " + expr + "\n"
	globals, err := starlark.ExecFileOptions(&opts, thread, "expr", program, predeclared)
	if err != nil {
		return 0, ErrExpressionInvalid(expr)
	}

	result, ok := globals["__result__"]
	if !ok {
		return 0, ErrExpressionInvalid(expr)
	}
	i, ok := result.(starlark.Int)
	if !ok {
		return 0, ErrExpressionInvalid(expr)
	}
	value, ok := i.Int64()
	if !ok {
		return 0, ErrExpressionInvalid(expr)
	}
	return value, nil
}
