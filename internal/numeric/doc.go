// Package numeric provides the dynamically-tagged number type used by the
// interpreter runtime.
//
// A Value is either an Integer (int32) or a Float (float32). Operators coerce
// between the two following the promotion rule: if either operand is a Float
// the result is a Float, and division always yields a Float. Integer arithmetic
// wraps with native 32-bit semantics.
//
// Key constraints:
//   - Values are immutable scalars; every operation returns a new Value
//   - Bitwise, modulo and shift operators accept Integer operands only
//   - Invalid operand pairings return *OperationError, never panic
//   - Cross-variant comparison converts the Integer to float32 first
//
// This package imports nothing internal. The harness and CLI layer on top of it.
package numeric
