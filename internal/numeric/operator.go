package numeric

import (
	"fmt"
	"strings"
)

// Operator identifies a language-level operator routed to this package.
type Operator uint8

const (
	OpInvalid Operator = iota

	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow

	// Integer only
	OpRem
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr

	// Comparison
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe

	// Unary
	OpNeg
	OpNot
	OpBool

	opCount
)

type operatorInfo struct {
	symbol      string
	name        string
	description string
	arity       int
}

var operators = [opCount]operatorInfo{
	OpInvalid: {"?", "invalid", "invalid operator", 0},
	OpAdd:     {"+", "add", "addition", 2},
	OpSub:     {"-", "sub", "subtraction", 2},
	OpMul:     {"*", "mul", "multiplication", 2},
	OpDiv:     {"/", "div", "division", 2},
	OpPow:     {"**", "pow", "exponentiation", 2},
	OpRem:     {"%", "rem", "modulo", 2},
	OpAnd:     {"&", "and", "bitwise AND", 2},
	OpOr:      {"|", "or", "bitwise OR", 2},
	OpXor:     {"^", "xor", "bitwise XOR", 2},
	OpShl:     {"<<", "shl", "shift-left", 2},
	OpShr:     {">>", "shr", "shift-right", 2},
	OpEq:      {"==", "eq", "equality", 2},
	OpNe:      {"!=", "ne", "inequality", 2},
	OpLt:      {"<", "lt", "less-than", 2},
	OpLe:      {"<=", "le", "less-or-equal", 2},
	OpGt:      {">", "gt", "greater-than", 2},
	OpGe:      {">=", "ge", "greater-or-equal", 2},
	OpNeg:     {"-", "neg", "negation", 1},
	OpNot:     {"~", "not", "bitwise NOT", 1},
	OpBool:    {"?", "bool", "truthiness", 1},
}

// lookup maps every accepted spelling to its operator. Symbols are taken
// for binary operators only, so "-" means subtraction.
var lookup = func() map[string]Operator {
	m := make(map[string]Operator, 2*int(opCount))
	for op := OpAdd; op < opCount; op++ {
		info := operators[op]
		m[info.name] = op
		if info.arity == 2 {
			m[info.symbol] = op
		}
	}
	m["~"] = OpNot
	return m
}()

// ParseOperator resolves an operator from its symbol ("<<") or name ("shl").
// Names are case-insensitive.
func ParseOperator(s string) (Operator, error) {
	if op, ok := lookup[s]; ok {
		return op, nil
	}
	if op, ok := lookup[strings.ToLower(s)]; ok {
		return op, nil
	}
	return OpInvalid, fmt.Errorf("unknown operator %q", s)
}

// Operators returns every valid operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, 0, opCount-1)
	for op := OpAdd; op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

func (op Operator) info() operatorInfo {
	if op >= opCount {
		return operators[OpInvalid]
	}
	return operators[op]
}

// Symbol returns the operator token, e.g. "**".
func (op Operator) Symbol() string { return op.info().symbol }

// Name returns the word spelling, e.g. "pow".
func (op Operator) Name() string { return op.info().name }

// Description returns the phrase used in error messages.
func (op Operator) Description() string { return op.info().description }

// Arity returns 1 for unary and 2 for binary operators (0 if invalid).
func (op Operator) Arity() int { return op.info().arity }

// String implements fmt.Stringer using the name spelling.
func (op Operator) String() string { return op.Name() }

// IsComparison reports whether op yields a bool rather than a Value.
// Truthiness counts as a comparison for routing purposes.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpBool:
		return true
	}
	return false
}

// Eval applies a value-producing operator. rhs is ignored (and may be nil)
// for unary operators. Comparison operators are rejected; use Test.
func Eval(op Operator, lhs, rhs Value) (Value, error) {
	if op.IsComparison() || op.Arity() == 0 {
		return nil, newInvalidOperator(op, lhs, rhs, fmt.Sprintf("operator %q does not produce a number", op.Name()))
	}
	if err := checkOperands(op, lhs, rhs); err != nil {
		return nil, err
	}

	switch op {
	case OpAdd:
		return Add(lhs, rhs), nil
	case OpSub:
		return Sub(lhs, rhs), nil
	case OpMul:
		return Mul(lhs, rhs), nil
	case OpDiv:
		return Div(lhs, rhs), nil
	case OpPow:
		return Pow(lhs, rhs), nil
	case OpRem:
		return Rem(lhs, rhs)
	case OpAnd:
		return And(lhs, rhs)
	case OpOr:
		return Or(lhs, rhs)
	case OpXor:
		return Xor(lhs, rhs)
	case OpShl:
		return Shl(lhs, rhs)
	case OpShr:
		return Shr(lhs, rhs)
	case OpNeg:
		return Neg(lhs), nil
	case OpNot:
		return Not(lhs)
	}
	return nil, newInvalidOperator(op, lhs, rhs, "unhandled operator")
}

// Test applies a comparison operator or the truthiness predicate.
func Test(op Operator, lhs, rhs Value) (bool, error) {
	if !op.IsComparison() {
		return false, newInvalidOperator(op, lhs, rhs, fmt.Sprintf("operator %q does not produce a bool", op.Name()))
	}
	if err := checkOperands(op, lhs, rhs); err != nil {
		return false, err
	}

	switch op {
	case OpEq:
		return Equal(lhs, rhs), nil
	case OpNe:
		return NotEqual(lhs, rhs), nil
	case OpLt:
		return Less(lhs, rhs), nil
	case OpLe:
		return LessEqual(lhs, rhs), nil
	case OpGt:
		return Greater(lhs, rhs), nil
	case OpGe:
		return GreaterEqual(lhs, rhs), nil
	case OpBool:
		return Truthy(lhs), nil
	}
	return false, newInvalidOperator(op, lhs, rhs, "unhandled operator")
}

// checkOperands rejects missing operands before dispatch.
func checkOperands(op Operator, lhs, rhs Value) error {
	if lhs == nil {
		return newInvalidOperator(op, lhs, rhs, "missing left operand")
	}
	if op.Arity() == 2 && rhs == nil {
		return newInvalidOperator(op, lhs, rhs, "missing right operand")
	}
	return nil
}
