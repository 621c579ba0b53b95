package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticPromotion(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Value) Value
		a, b Value
		want Value
	}{
		{"int+int", Add, Integer(2), Integer(3), Integer(5)},
		{"int+float", Add, Integer(1), Float(0.5), Float(1.5)},
		{"float+int", Add, Float(0.5), Integer(1), Float(1.5)},
		{"float+float", Add, Float(0.25), Float(0.5), Float(0.75)},

		{"int-int", Sub, Integer(2), Integer(5), Integer(-3)},
		{"int-float", Sub, Integer(2), Float(0.5), Float(1.5)},
		{"float-int", Sub, Float(0.5), Integer(2), Float(-1.5)},
		{"float-float", Sub, Float(3), Float(0.5), Float(2.5)},

		{"int*int", Mul, Integer(6), Integer(-7), Integer(-42)},
		{"int*float", Mul, Integer(3), Float(0.5), Float(1.5)},
		{"float*int", Mul, Float(1.5), Integer(2), Float(3)},
		{"float*float", Mul, Float(1.5), Float(1.5), Float(2.25)},

		{"int/int", Div, Integer(5), Integer(2), Float(2.5)},
		{"int/int exact", Div, Integer(6), Integer(3), Float(2)},
		{"int/float", Div, Integer(1), Float(0.5), Float(2)},
		{"float/int", Div, Float(5), Integer(2), Float(2.5)},
		{"float/float", Div, Float(1), Float(4), Float(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}

func TestIntegerWraparound(t *testing.T) {
	assert.Equal(t, Integer(math.MinInt32), Add(Integer(math.MaxInt32), Integer(1)))
	assert.Equal(t, Integer(math.MaxInt32), Sub(Integer(math.MinInt32), Integer(1)))
	assert.Equal(t, Integer(-2), Mul(Integer(math.MaxInt32), Integer(2)))
	assert.Equal(t, Integer(0), Mul(Integer(65536), Integer(65536)))
}

func TestOverflowDoesNotPromote(t *testing.T) {
	got := Add(Integer(math.MaxInt32), Integer(math.MaxInt32))
	assert.Equal(t, KindInteger, got.Kind())
	assert.Equal(t, Integer(-2), got)
}

func TestDivisionByZeroFloat(t *testing.T) {
	assert.Equal(t, inf(1), Div(Float(5), Float(0)))
	assert.Equal(t, inf(1), Div(Integer(1), Integer(0)))
	assert.Equal(t, inf(-1), Div(Float(-1), Integer(0)))
	assert.Equal(t, inf(-1), Div(Integer(1), negZero()))

	got := Div(Integer(0), Integer(0))
	f, ok := got.(Float)
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(f)))
}

func TestDivisionRoundsToFloat32(t *testing.T) {
	// 1/3 is rounded once, in float32.
	assert.Equal(t, Float(float32(1)/float32(3)), Div(Integer(1), Integer(3)))

	// Large integers are widened to float32 before dividing.
	assert.Equal(t, Float(16777216), Div(Integer(16777217), Integer(1)))
}

func TestNeg(t *testing.T) {
	assert.Equal(t, Integer(-5), Neg(Integer(5)))
	assert.Equal(t, Integer(5), Neg(Integer(-5)))
	assert.Equal(t, Integer(math.MinInt32), Neg(Integer(math.MinInt32)))
	assert.Equal(t, Float(-2.5), Neg(Float(2.5)))
	assert.Equal(t, inf(-1), Neg(inf(1)))

	z, ok := Neg(Float(0)).(Float)
	assert.True(t, ok)
	assert.True(t, math.Signbit(float64(z)), "negating +0 yields -0")
}
