package types

import "strconv"

type ValueKind string

const (
	ValueNumber ValueKind = "number"
	ValueText   ValueKind = "text"
)

// Value is the result of evaluating one expression: either a float or
// a string, decided once at evaluation time.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

func NumberValue(f float64) Value {
	return Value{Kind: ValueNumber, Num: f}
}

func TextValue(s string) Value {
	return Value{Kind: ValueText, Str: s}
}

// String renders the canonical form substituted back into the
// document: minimal digits for numbers, the text verbatim otherwise.
func (v Value) String() string {
	if v.Kind == ValueNumber {
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Str
}
