package numeric

// promote applies ints when both operands are Integers and floats otherwise.
// This is the single place the Integer x Float promotion rule lives.
func promote(a, b Value, ints func(x, y int32) Value, floats func(x, y float32) Value) Value {
	if x, y, ok := bothIntegers(a, b); ok {
		return ints(x, y)
	}
	return floats(toFloat(a), toFloat(b))
}

// Add returns a + b. Integer overflow wraps.
func Add(a, b Value) Value {
	return promote(a, b,
		func(x, y int32) Value { return Integer(x + y) },
		func(x, y float32) Value { return Float(x + y) },
	)
}

// Sub returns a - b. Integer overflow wraps.
func Sub(a, b Value) Value {
	return promote(a, b,
		func(x, y int32) Value { return Integer(x - y) },
		func(x, y float32) Value { return Float(x - y) },
	)
}

// Mul returns a * b. Integer overflow wraps.
func Mul(a, b Value) Value {
	return promote(a, b,
		func(x, y int32) Value { return Integer(x * y) },
		func(x, y float32) Value { return Float(x * y) },
	)
}

// Div returns a / b as a Float for every pairing.
// Integer operands are widened first, so Div(Integer(5), Integer(2)) is
// Float(2.5) and division by zero follows IEEE-754 (±Inf or NaN).
func Div(a, b Value) Value {
	return Float(toFloat(a) / toFloat(b))
}

// Neg returns -v, preserving the variant. -MinInt32 wraps to MinInt32.
func Neg(v Value) Value {
	switch val := v.(type) {
	case Integer:
		return -val
	default:
		return Float(-toFloat(v))
	}
}
