package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseError reports literal text that is not a valid numeric value.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid numeric literal %q: %s", e.Input, e.Reason)
}

// ParseLiteral converts source text to a Value.
//
// The text is trimmed and NFKC-normalized, so full-width digits are accepted.
// Decimal integers and 0x/0o/0b prefixed integers that fit in int32 become
// Integer. Text containing a decimal point or exponent, and the words inf,
// +inf, -inf and nan, become Float. Integers outside int32 and finite
// literals beyond the float32 range are errors rather than a silent
// promotion or infinity; tiny literals still round toward zero.
// NFKC also folds compatibility digits, so "①" parses as 1.
func ParseLiteral(text string) (Value, error) {
	s := norm.NFKC.String(strings.TrimSpace(text))
	if s == "" {
		return nil, &ParseError{Input: text, Reason: "empty"}
	}

	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return Float(math.Inf(1)), nil
	case "-inf", "-infinity":
		return Float(math.Inf(-1)), nil
	case "nan":
		return Float(math.NaN()), nil
	}

	if isIntegerLiteral(s) {
		n, err := strconv.ParseInt(s, integerBase(s), 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, &ParseError{Input: text, Reason: "integer out of 32-bit range"}
			}
			return nil, &ParseError{Input: text, Reason: "malformed integer"}
		}
		return Integer(n), nil
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, &ParseError{Input: text, Reason: "float out of 32-bit range"}
		}
		return nil, &ParseError{Input: text, Reason: "malformed number"}
	}
	return Float(f), nil
}

// MustParseLiteral is like ParseLiteral but panics on error.
// Intended for tests and static tables.
func MustParseLiteral(text string) Value {
	v, err := ParseLiteral(text)
	if err != nil {
		panic(err)
	}
	return v
}

// isIntegerLiteral reports whether s has integer shape: optional sign, then
// either a radix prefix or decimal digits only.
func isIntegerLiteral(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 || body == "" {
		return false
	}
	if hasRadixPrefix(body) {
		return true
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasRadixPrefix(body string) bool {
	if len(body) < 2 || body[0] != '0' {
		return false
	}
	switch body[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// integerBase picks base 0 (prefix-driven) only when a prefix is present,
// so "010" stays decimal ten.
func integerBase(s string) int {
	if hasRadixPrefix(strings.TrimLeft(s, "+-")) {
		return 0
	}
	return 10
}
