package numeric

import "math"

// Pow raises base to exp.
//
// Integer ^ Integer with a non-negative exponent stays an Integer and wraps
// on overflow. A negative integer exponent yields Float(1 / base^|exp|), so
// Pow(Integer(2), Integer(-3)) is Float(0.125). A Float base with an Integer
// exponent multiplies in float32 by square-and-multiply; a Float exponent
// uses the float power. Both take the reciprocal for a negative exponent.
// Zero to a negative power is a float division and yields +Inf.
func Pow(base, exp Value) Value {
	if b, e, ok := bothIntegers(base, exp); ok {
		if e < 0 {
			return Float(1 / float32(ipow(b, uint32(-int64(e)))))
		}
		return Integer(ipow(b, uint32(e)))
	}

	if e, ok := exp.(Integer); ok {
		b := toFloat(base)
		if e < 0 {
			return Float(1 / fpow(b, uint32(-int64(e))))
		}
		return Float(fpow(b, uint32(e)))
	}

	b := float64(toFloat(base))
	e := float64(toFloat(exp))
	if e < 0 {
		return Float(1 / float32(math.Pow(b, -e)))
	}
	return Float(math.Pow(b, e))
}

// ipow computes base^exp with wrapping int32 multiplication.
// Square-and-multiply gives the same bits as repeated multiplication
// because wrapping multiplication is associative.
func ipow(base int32, exp uint32) int32 {
	result := int32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// fpow computes base^exp by square-and-multiply in float32, rounding after
// every multiplication. Results can differ in the last bit from a single
// rounded math.Pow.
func fpow(base float32, exp uint32) float32 {
	result := float32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = float32(result * base)
		}
		exp >>= 1
		if exp > 0 {
			base = float32(base * base)
		}
	}
	return result
}
