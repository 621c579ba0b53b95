package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/numval/internal/numeric"
)

//go:embed schema.cue
var schemaCUE string

// Suite is a named list of conformance cases.
// Tags carry both yaml (yaml.v3) and json (CUE decoding) names.
type Suite struct {
	// Name uniquely identifies this suite. Also names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description" json:"description"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is a single operator application with its expected outcome.
type Case struct {
	// Name is optional; defaults to the rendered expression.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Op is an operator symbol ("<<") or name ("shl").
	Op string `yaml:"op" json:"op"`

	// LHS is the left (or only) operand literal.
	LHS string `yaml:"lhs" json:"lhs"`

	// RHS is the right operand literal. Must be empty for unary operators.
	RHS string `yaml:"rhs,omitempty" json:"rhs,omitempty"`

	Expect Expect `yaml:"expect" json:"expect"`
}

// Expect specifies one of: a result value, a bool, or an error code.
type Expect struct {
	// Value is the expected result literal. Its kind must match too.
	Value string `yaml:"value,omitempty" json:"value,omitempty"`

	// Kind optionally pins the result variant ("int" or "float").
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Bool is the expected outcome of a comparison or truthiness test.
	Bool *bool `yaml:"bool,omitempty" json:"bool,omitempty"`

	// Error is the expected numeric.ErrorCode.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// label returns the case name, or the rendered expression when unnamed.
func (c Case) label() string {
	if c.Name != "" {
		return c.Name
	}
	if c.RHS == "" {
		return c.Op + " " + c.LHS
	}
	return c.LHS + " " + c.Op + " " + c.RHS
}

// LoadSuite reads a suite file, choosing the decoder by extension:
// .yaml/.yml use strict YAML decoding, .cue is compiled against the
// embedded schema.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite *Suite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		suite, err = decodeYAML(data)
	case ".cue":
		suite, err = decodeCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported suite format %q (want .yaml, .yml or .cue)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return suite, nil
}

// decodeYAML parses a suite with strict field validation (catches typos
// like "expects:" vs "expect:").
func decodeYAML(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &suite, nil
}

// decodeCUE compiles a CUE suite, unifies it with #Suite and decodes it.
// #Suite is a definition and therefore closed, so unknown fields fail.
func decodeCUE(data []byte, path string) (*Suite, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile suite schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Suite"))

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("suite does not match schema: %w", err)
	}

	var suite Suite
	if err := unified.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to decode CUE suite: %w", err)
	}
	return &suite, nil
}

// ValidateSuite checks required fields, operator names, arity, literals
// and that each case carries exactly one expectation of the right form.
func ValidateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
	}
	return nil
}

func validateCase(c Case) error {
	op, err := numeric.ParseOperator(c.Op)
	if err != nil {
		return err
	}

	if c.LHS == "" {
		return fmt.Errorf("lhs is required")
	}
	if _, err := numeric.ParseLiteral(c.LHS); err != nil {
		return fmt.Errorf("lhs: %w", err)
	}

	switch op.Arity() {
	case 1:
		if c.RHS != "" {
			return fmt.Errorf("operator %q is unary; rhs must be empty", op.Name())
		}
	case 2:
		if c.RHS == "" {
			return fmt.Errorf("operator %q requires rhs", op.Name())
		}
		if _, err := numeric.ParseLiteral(c.RHS); err != nil {
			return fmt.Errorf("rhs: %w", err)
		}
	}

	return validateExpect(op, c.Expect)
}

func validateExpect(op numeric.Operator, e Expect) error {
	set := 0
	if e.Value != "" {
		set++
	}
	if e.Bool != nil {
		set++
	}
	if e.Error != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("expect: exactly one of value, bool or error is required")
	}

	if e.Kind != "" {
		if e.Value == "" {
			return fmt.Errorf("expect: kind is only valid with value")
		}
		if e.Kind != numeric.KindInteger.String() && e.Kind != numeric.KindFloat.String() {
			return fmt.Errorf("expect: unknown kind %q", e.Kind)
		}
	}

	switch {
	case e.Value != "":
		if op.IsComparison() {
			return fmt.Errorf("expect: operator %q yields a bool, not a value", op.Name())
		}
		if _, err := numeric.ParseLiteral(e.Value); err != nil {
			return fmt.Errorf("expect.value: %w", err)
		}
	case e.Bool != nil:
		if !op.IsComparison() {
			return fmt.Errorf("expect: operator %q yields a value, not a bool", op.Name())
		}
	case e.Error != "":
		switch numeric.ErrorCode(e.Error) {
		case numeric.ErrCodeInvalidOperand, numeric.ErrCodeDivisionByZero, numeric.ErrCodeInvalidOperator:
		default:
			return fmt.Errorf("expect: unknown error code %q", e.Error)
		}
	}
	return nil
}
