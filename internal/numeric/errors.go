package numeric

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes operation failures.
type ErrorCode string

const (
	// ErrCodeInvalidOperand indicates a bitwise, modulo or shift operator
	// received a Float operand.
	ErrCodeInvalidOperand ErrorCode = "INVALID_OPERAND_TYPE"

	// ErrCodeDivisionByZero indicates integer modulo by zero.
	// Float division by zero is not an error.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeInvalidOperator indicates an operator was routed to the wrong
	// entry point (a comparison passed to Eval, or an arity mismatch).
	ErrCodeInvalidOperator ErrorCode = "INVALID_OPERATOR"
)

// Sentinels for errors.Is matching against *OperationError.
var (
	ErrInvalidOperand  = errors.New("invalid operand type")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
)

// OperationError is the single failure type returned by operators.
//
// It records the operator and the variant of each operand so a host
// evaluator can report a language-level runtime error.
type OperationError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operator that failed.
	Op Operator

	// Lhs is the variant of the left (or only) operand.
	Lhs Kind

	// Rhs is the variant of the right operand, KindNone for unary operators.
	Rhs Kind

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Rhs == KindNone {
		return fmt.Sprintf("%s: %s (%s%s)", e.Code, e.Message, e.Op.Symbol(), e.Lhs)
	}
	return fmt.Sprintf("%s: %s (%s %s %s)", e.Code, e.Message, e.Lhs, e.Op.Symbol(), e.Rhs)
}

// Is matches the package sentinels by code.
func (e *OperationError) Is(target error) bool {
	switch target {
	case ErrInvalidOperand:
		return e.Code == ErrCodeInvalidOperand
	case ErrDivisionByZero:
		return e.Code == ErrCodeDivisionByZero
	case ErrInvalidOperator:
		return e.Code == ErrCodeInvalidOperator
	}
	return false
}

// Operand returns the variant that triggered the failure: the first Float
// operand for invalid operand errors, otherwise the left operand.
func (e *OperationError) Operand() Kind {
	if e.Code == ErrCodeInvalidOperand && e.Lhs != KindFloat && e.Rhs == KindFloat {
		return e.Rhs
	}
	return e.Lhs
}

// IsInvalidOperand returns true if err is an invalid operand type error.
// Uses errors.As to handle wrapped errors.
func IsInvalidOperand(err error) bool {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeInvalidOperand
	}
	return false
}

// IsDivisionByZero returns true if err is an integer division by zero error.
// Uses errors.As to handle wrapped errors.
func IsDivisionByZero(err error) bool {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeDivisionByZero
	}
	return false
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an
// *OperationError.
func CodeOf(err error) ErrorCode {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return ""
}

func newInvalidOperand(op Operator, lhs, rhs Value) *OperationError {
	return &OperationError{
		Code:    ErrCodeInvalidOperand,
		Op:      op,
		Lhs:     KindOf(lhs),
		Rhs:     KindOf(rhs),
		Message: fmt.Sprintf("%s applies to integer operands only", op.Description()),
	}
}

func newDivisionByZero(op Operator) *OperationError {
	return &OperationError{
		Code:    ErrCodeDivisionByZero,
		Op:      op,
		Lhs:     KindInteger,
		Rhs:     KindInteger,
		Message: fmt.Sprintf("integer %s by zero", op.Description()),
	}
}

func newInvalidOperator(op Operator, lhs, rhs Value, reason string) *OperationError {
	return &OperationError{
		Code:    ErrCodeInvalidOperator,
		Op:      op,
		Lhs:     KindOf(lhs),
		Rhs:     KindOf(rhs),
		Message: reason,
	}
}
