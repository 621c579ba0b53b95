package numeric

import "golang.org/x/exp/constraints"

// order compares two scalars of the same type.
// ok is false when either side is NaN.
func order[T constraints.Integer | constraints.Float](x, y T) (int, bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return +1, true
	case x == y:
		return 0, true
	default:
		return 0, false
	}
}

// Compare orders a against b, converting an Integer to float32 when the
// variants differ. It returns -1, 0 or +1 with ok true, or ok false when the
// pair is incomparable because a NaN is involved.
func Compare(a, b Value) (int, bool) {
	if x, y, ok := bothIntegers(a, b); ok {
		return order(x, y)
	}
	return order(toFloat(a), toFloat(b))
}

// Equal reports a == b across variants. Integer(2) equals Float(2).
// NaN is never equal to anything.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

// NotEqual reports a != b. It is the exact negation of Equal, so it is true
// whenever a NaN is involved.
func NotEqual(a, b Value) bool {
	return !Equal(a, b)
}

// Less reports a < b. False for incomparable pairs.
func Less(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c < 0
}

// LessEqual reports a <= b. False for incomparable pairs.
func LessEqual(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c <= 0
}

// Greater reports a > b. False for incomparable pairs.
func Greater(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c > 0
}

// GreaterEqual reports a >= b. False for incomparable pairs.
func GreaterEqual(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c >= 0
}
