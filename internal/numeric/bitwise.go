package numeric

// integerOnly applies fn when both operands are Integers and reports an
// invalid operand error for any pairing involving a Float.
func integerOnly(op Operator, a, b Value, fn func(x, y int32) (Value, error)) (Value, error) {
	x, y, ok := bothIntegers(a, b)
	if !ok {
		return nil, newInvalidOperand(op, a, b)
	}
	return fn(x, y)
}

// And returns the bitwise AND of two Integers.
func And(a, b Value) (Value, error) {
	return integerOnly(OpAnd, a, b, func(x, y int32) (Value, error) {
		return Integer(x & y), nil
	})
}

// Or returns the bitwise OR of two Integers.
func Or(a, b Value) (Value, error) {
	return integerOnly(OpOr, a, b, func(x, y int32) (Value, error) {
		return Integer(x | y), nil
	})
}

// Xor returns the bitwise XOR of two Integers.
func Xor(a, b Value) (Value, error) {
	return integerOnly(OpXor, a, b, func(x, y int32) (Value, error) {
		return Integer(x ^ y), nil
	})
}

// Rem returns the truncated remainder a % b of two Integers.
// The result takes the sign of a. A zero divisor is a DivisionByZero error;
// MinInt32 % -1 is 0.
func Rem(a, b Value) (Value, error) {
	return integerOnly(OpRem, a, b, func(x, y int32) (Value, error) {
		if y == 0 {
			return nil, newDivisionByZero(OpRem)
		}
		return Integer(x % y), nil
	})
}

// Shl shifts a left by the low five bits of b.
func Shl(a, b Value) (Value, error) {
	return integerOnly(OpShl, a, b, func(x, y int32) (Value, error) {
		return Integer(x << shiftCount(y)), nil
	})
}

// Shr shifts a right by the low five bits of b, propagating the sign bit.
func Shr(a, b Value) (Value, error) {
	return integerOnly(OpShr, a, b, func(x, y int32) (Value, error) {
		return Integer(x >> shiftCount(y)), nil
	})
}

// Not returns the bitwise complement of an Integer.
func Not(v Value) (Value, error) {
	i, ok := v.(Integer)
	if !ok {
		return nil, newInvalidOperand(OpNot, v, nil)
	}
	return ^i, nil
}

// shiftCount masks a shift amount to the operand width, so negative and
// oversized counts wrap instead of panicking.
func shiftCount(n int32) uint32 {
	return uint32(n) & 31
}
