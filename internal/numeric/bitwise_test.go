package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitwiseIntegers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Value) (Value, error)
		a, b Integer
		want Integer
	}{
		{"and", And, 12, 10, 8},
		{"or", Or, 12, 10, 14},
		{"xor", Xor, 12, 10, 6},
		{"and negative", And, -1, 0x0F, 0x0F},
		{"xor self", Xor, 12345, 12345, 0},

		{"rem", Rem, 7, 3, 1},
		{"rem negative dividend", Rem, -7, 3, -1},
		{"rem negative divisor", Rem, 7, -3, 1},
		{"rem min by minus one", Rem, math.MinInt32, -1, 0},

		{"shl", Shl, 1, 4, 16},
		{"shl into sign bit", Shl, 1, 31, math.MinInt32},
		{"shl count masked", Shl, 1, 32, 1},
		{"shl negative count", Shl, 1, -1, math.MinInt32},
		{"shr", Shr, 16, 2, 4},
		{"shr arithmetic", Shr, -16, 2, -4},
		{"shr min", Shr, math.MinInt32, 31, -1},
		{"shr count masked", Shr, 256, 33, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerOnlyRejectsFloats(t *testing.T) {
	ops := []struct {
		op Operator
		fn func(a, b Value) (Value, error)
	}{
		{OpAnd, And},
		{OpOr, Or},
		{OpXor, Xor},
		{OpRem, Rem},
		{OpShl, Shl},
		{OpShr, Shr},
	}
	pairs := []struct {
		name string
		a, b Value
	}{
		{"int,float", Integer(5), Float(1)},
		{"float,int", Float(5), Integer(1)},
		{"float,float", Float(5), Float(1)},
	}

	for _, o := range ops {
		for _, p := range pairs {
			t.Run(o.op.Name()+"/"+p.name, func(t *testing.T) {
				got, err := o.fn(p.a, p.b)
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, IsInvalidOperand(err))
				assert.True(t, errors.Is(err, ErrInvalidOperand))

				var oe *OperationError
				require.True(t, errors.As(err, &oe))
				assert.Equal(t, o.op, oe.Op)
				assert.Equal(t, p.a.Kind(), oe.Lhs)
				assert.Equal(t, p.b.Kind(), oe.Rhs)
				assert.Equal(t, KindFloat, oe.Operand())
			})
		}
	}
}

func TestAndRejectsFloatOperand(t *testing.T) {
	_, err := And(Integer(5), Float(1.0))
	require.Error(t, err)
	assert.Equal(t, "INVALID_OPERAND_TYPE: bitwise AND applies to integer operands only (int & float)", err.Error())
}

func TestRemDivisionByZero(t *testing.T) {
	got, err := Rem(Integer(5), Integer(0))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, IsDivisionByZero(err))
	assert.False(t, IsInvalidOperand(err))
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.Equal(t, ErrCodeDivisionByZero, CodeOf(err))
}

func TestRemFloatTakesPrecedenceOverZero(t *testing.T) {
	// A Float operand is checked before the divisor.
	_, err := Rem(Float(5), Integer(0))
	assert.True(t, IsInvalidOperand(err))
}

func TestNot(t *testing.T) {
	got, err := Not(Integer(0))
	require.NoError(t, err)
	assert.Equal(t, Integer(-1), got)

	got, err = Not(Integer(math.MaxInt32))
	require.NoError(t, err)
	assert.Equal(t, Integer(math.MinInt32), got)

	got, err = Not(Float(1))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, IsInvalidOperand(err))

	var oe *OperationError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, OpNot, oe.Op)
	assert.Equal(t, KindFloat, oe.Lhs)
	assert.Equal(t, KindNone, oe.Rhs)
	assert.Equal(t, "INVALID_OPERAND_TYPE: bitwise NOT applies to integer operands only (~float)", err.Error())
}
