package numeric

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNone marks an absent operand (the right side of a unary operator).
	KindNone Kind = iota
	KindInteger
	KindFloat
)

// String returns the short variant name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "none"
	}
}

// Value is a sealed interface over the two numeric variants.
// Only Integer and Float implement it.
type Value interface {
	// Kind reports the variant.
	Kind() Kind

	// String renders the payload with Go's native formatting.
	String() string

	numericValue() // Sealed
}

// Integer is the 32-bit signed integer variant.
type Integer int32

func (Integer) numericValue() {}

// Kind implements Value.
func (Integer) Kind() Kind { return KindInteger }

// String implements Value.
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float is the 32-bit IEEE-754 variant.
type Float float32

func (Float) numericValue() {}

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }

// String implements Value.
// Uses the shortest representation that round-trips through float32,
// identical to fmt's %v for a float32.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// KindOf returns the variant of v, or KindNone for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNone
	}
	return v.Kind()
}

// Truthy reports the boolean interpretation of v.
// Integer(0), Float(0) and Float(-0) are false; everything else, NaN
// included, is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Integer:
		return val != 0
	case Float:
		return val != 0
	default:
		return false
	}
}

// toFloat widens either variant to float32.
// Integers beyond 2^24 lose precision here; callers rely on that rounding.
func toFloat(v Value) float32 {
	switch val := v.(type) {
	case Integer:
		return float32(val)
	case Float:
		return float32(val)
	default:
		panic(fmt.Sprintf("numeric: unsupported value %T", v))
	}
}

// bothIntegers unpacks a pair when neither side is a Float.
func bothIntegers(a, b Value) (int32, int32, bool) {
	x, okA := a.(Integer)
	y, okB := b.(Integer)
	if !okA || !okB {
		return 0, 0, false
	}
	return int32(x), int32(y), true
}
