package metrics

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the scalar kinds an answer field can hold.
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueNumber
	ValueText
)

// Value is a tagged answer scalar. The zero Value is absent.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

func NumberValue(f float64) Value { return Value{Kind: ValueNumber, Num: f} }

func TextValue(s string) Value { return Value{Kind: ValueText, Str: s} }

// Number coerces the value to a float64. Malformed or absent input yields 0
// rather than an error; charts must render over arbitrary historical data.
func (v Value) Number() float64 {
	switch v.Kind {
	case ValueNumber:
		return v.Num
	case ValueText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

// Text coerces the value to a string; absent yields "".
func (v Value) Text() string {
	switch v.Kind {
	case ValueText:
		return v.Str
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return ""
}
