package numeric

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossVariantEquality(t *testing.T) {
	for _, x := range []int32{0, 1, -1, 2, 1000, -65536, 1 << 24} {
		t.Run(fmt.Sprint(x), func(t *testing.T) {
			assert.True(t, Equal(Integer(x), Float(float32(x))))
			assert.True(t, Equal(Float(float32(x)), Integer(x)))
			assert.False(t, NotEqual(Integer(x), Float(float32(x))))
		})
	}

	assert.True(t, Equal(Integer(0), negZero()))
	assert.False(t, Equal(Integer(2), Float(2.5)))
	assert.True(t, NotEqual(Integer(2), Float(2.5)))
}

func TestCrossVariantPrecisionLoss(t *testing.T) {
	// 2^24+1 is not representable in float32 and rounds to 2^24.
	assert.True(t, Equal(Integer(16777217), Float(16777216)))
	// Same-variant comparison stays exact.
	assert.False(t, Equal(Integer(16777217), Integer(16777216)))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Value
		want int
	}{
		{Integer(1), Integer(2), -1},
		{Integer(2), Integer(2), 0},
		{Integer(3), Integer(2), +1},
		{Integer(1), Float(1.5), -1},
		{Float(1.5), Integer(1), +1},
		{Integer(2), Float(2), 0},
		{Float(-0.5), Float(0.5), -1},
		{inf(-1), Integer(math.MinInt32), -1},
		{inf(1), Integer(math.MaxInt32), +1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.a, tt.b), func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNaNIsIncomparable(t *testing.T) {
	for _, other := range []Value{Integer(0), Integer(1), Float(1), nan(), inf(1)} {
		for _, pair := range [][2]Value{{nan(), other}, {other, nan()}} {
			a, b := pair[0], pair[1]
			_, ok := Compare(a, b)
			assert.False(t, ok)
			assert.False(t, Less(a, b))
			assert.False(t, LessEqual(a, b))
			assert.False(t, Greater(a, b))
			assert.False(t, GreaterEqual(a, b))
			assert.False(t, Equal(a, b))
			assert.True(t, NotEqual(a, b))
		}
	}
}

func TestOrderingSymmetry(t *testing.T) {
	samples := []Value{
		Integer(math.MinInt32), Integer(-3), Integer(0), Integer(2), Integer(math.MaxInt32),
		Float(-2.5), negZero(), Float(0), Float(2), Float(2.5), inf(1), inf(-1),
	}

	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, Less(a, b), Greater(b, a), "%v < %v", a, b)
			assert.Equal(t, LessEqual(a, b), GreaterEqual(b, a), "%v <= %v", a, b)
			assert.Equal(t, Equal(a, b), Equal(b, a), "%v == %v", a, b)

			// Exactly one of <, ==, > holds for comparable values.
			n := 0
			for _, held := range []bool{Less(a, b), Equal(a, b), Greater(a, b)} {
				if held {
					n++
				}
			}
			assert.Equal(t, 1, n, "%v vs %v", a, b)
		}
	}
}
