// Package harness provides conformance testing for the numeric value type.
//
// A suite lists operator applications and their expected outcomes. The
// harness evaluates every case through the numeric operator table, records
// a trace event per case and reports mismatches.
//
// # Suite Format
//
// Suites are YAML files:
//
//	name: promotion
//	description: "Integer op Float promotes to Float"
//	cases:
//	  - op: "+"
//	    lhs: "1"
//	    rhs: "0.5"
//	    expect: { value: "1.5" }
//	  - op: "&"
//	    lhs: "5"
//	    rhs: "1.0"
//	    expect: { error: INVALID_OPERAND_TYPE }
//	  - op: "<"
//	    lhs: "nan"
//	    rhs: "1"
//	    expect: { bool: false }
//
// or CUE files with the same fields at top level. CUE suites are unified
// with the embedded #Suite schema before decoding, so unknown fields and
// unknown error codes are rejected by the schema.
//
// # Literals
//
// Operands and expected values are numeric literals as accepted by
// numeric.ParseLiteral: "2" is an Integer while "2.0" is a Float. Expected
// Floats match bit-for-bit, so "-0.0" and "0.0" differ, and "nan" matches
// any NaN.
//
// # Expectations
//
// Exactly one of value, bool or error is set per case. Comparison operators
// and bool (truthiness) expect a bool; all other operators expect a value.
// Either kind of operator may expect an error code instead.
package harness
