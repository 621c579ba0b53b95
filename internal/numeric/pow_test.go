package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	tests := []struct {
		name      string
		base, exp Value
		want      Value
	}{
		{"int positive exponent", Integer(2), Integer(10), Integer(1024)},
		{"int zero exponent", Integer(7), Integer(0), Integer(1)},
		{"int zero to zero", Integer(0), Integer(0), Integer(1)},
		{"int negative base odd", Integer(-2), Integer(3), Integer(-8)},
		{"int negative base even", Integer(-2), Integer(4), Integer(16)},
		{"int negative exponent", Integer(2), Integer(-3), Float(0.125)},
		{"int negative exponent inexact", Integer(3), Integer(-1), Float(float32(1) / float32(3))},
		{"int minus one to min", Integer(-1), Integer(math.MinInt32), Float(1)},
		{"int wraps", Integer(2), Integer(31), Integer(math.MinInt32)},
		{"int wraps to zero", Integer(2), Integer(32), Integer(0)},
		{"int three to twenty", Integer(3), Integer(20), Integer(-808182895)},

		{"int base float exponent", Integer(4), Float(0.5), Float(2)},
		{"int base negative float exponent", Integer(4), Float(-0.5), Float(0.5)},
		{"float base int exponent", Float(1.5), Integer(2), Float(2.25)},
		{"float base negative int exponent", Float(2), Integer(-2), Float(0.25)},
		{"float negative base odd", Float(-2), Integer(3), Float(-8)},
		{"float float", Float(9), Float(0.5), Float(3)},
		{"float negative float exponent", Float(2), Float(-1), Float(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.base, tt.exp)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}

func TestPowZeroNegativeExponent(t *testing.T) {
	// The reciprocal is a float division, so these are +Inf and not errors.
	assert.Equal(t, inf(1), Pow(Integer(0), Integer(-1)))
	assert.Equal(t, inf(1), Pow(Float(0), Integer(-2)))
	assert.Equal(t, inf(1), Pow(Integer(0), Float(-0.5)))

	// 2^32 wraps to zero before the reciprocal is taken.
	assert.Equal(t, inf(1), Pow(Integer(2), Integer(-32)))
}

func TestPowNaN(t *testing.T) {
	got, ok := Pow(nan(), Integer(2)).(Float)
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(got)))

	// Anything to the zeroth power is one, NaN included.
	assert.Equal(t, Float(1), Pow(nan(), Integer(0)))
}

func TestPowFloatBaseIntegerExponentRoundsInFloat32(t *testing.T) {
	// Each multiplication rounds to float32, so these differ in the last
	// bit from a single rounding of the exact power.
	tests := []struct {
		name string
		base Float
		exp  Integer
		want Float
	}{
		{"1.1^5", 1.1, 5, 1.6105101},
		{"1.1^9", 1.1, 9, 2.3579483},
		{"0.9^7", 0.9, 7, 0.4782968},
		{"3.3^3", 3.3, 3, 35.936996},
		{"1.1^-5", 1.1, -5, 0.62092125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pow(tt.base, tt.exp).(Float)
			assert.True(t, ok)
			assert.Equal(t, math.Float32bits(float32(tt.want)), math.Float32bits(float32(got)))
		})
	}
}

func TestPowFloatBaseMinInt32Exponent(t *testing.T) {
	assert.Equal(t, Float(1), Pow(Float(1), Integer(math.MinInt32)))
	assert.Equal(t, Float(1), Pow(Float(-1), Integer(math.MinInt32)))
	assert.Equal(t, Float(0), Pow(Float(2), Integer(math.MinInt32)))
}
