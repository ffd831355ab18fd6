package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableWith(entries map[string]string) *SymbolTable {
	table := NewSymbolTable(nil)
	for name, value := range entries {
		table.Define(name, Symbol{Literal: value})
	}
	return table
}

func TestEvalTextLiteralLookup(t *testing.T) {
	symbols := tableWith(map[string]string{"x": "5"})

	got, err := EvalText("${x}", symbols)
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	got, err = EvalText("a${x}b", symbols)
	require.NoError(t, err)
	assert.Equal(t, "a5b", got)
}

func TestEvalTextStringProperty(t *testing.T) {
	symbols := tableWith(map[string]string{"color": "matte black"})
	got, err := EvalText("paint: ${color}", symbols)
	require.NoError(t, err)
	assert.Equal(t, "paint: matte black", got)
}

func TestEvalTextNumberLiterals(t *testing.T) {
	symbols := NewSymbolTable(nil)
	cases := map[string]string{
		"${1}":      "1",
		"${0.5}":    "0.5",
		"${.25}":    "0.25",
		"${2.5e-1}": "0.25",
		"${}":       "0",
	}
	for input, want := range cases {
		got, err := EvalText(input, symbols)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

// The evaluator consumes exactly one token; the remainder of a
// multi-token expression is ignored rather than combined.
func TestEvalTextIgnoresArithmeticTail(t *testing.T) {
	symbols := tableWith(map[string]string{"x": "5"})
	cases := map[string]string{
		"${1 + 2}":   "1",
		"${x * 3}":   "5",
		"${(1 + 2)}": "0",
		"${+ 2}":     "0",
	}
	for input, want := range cases {
		got, err := EvalText(input, symbols)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestEvalTextUndefinedSymbol(t *testing.T) {
	_, err := EvalText("${unknown}", NewSymbolTable(nil))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown")
}

func TestEvalTextPlainTextUntouched(t *testing.T) {
	got, err := EvalText("no expressions here", NewSymbolTable(nil))
	require.NoError(t, err)
	assert.Equal(t, "no expressions here", got)
}

func TestEvalTextNumericPropertyFormatting(t *testing.T) {
	symbols := tableWith(map[string]string{
		"mass":   "12.50",
		"offset": "-0.025",
	})
	got, err := EvalText("${mass} ${offset}", symbols)
	require.NoError(t, err)
	assert.Equal(t, "12.5 -0.025", got)
}
