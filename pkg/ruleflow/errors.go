package ruleflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for rule compilation.
var (
	// ErrEmptyRule indicates CreateRule was called with an empty string.
	ErrEmptyRule = errors.New("rule text is empty")

	// ErrNoTokens indicates the rule text produced no tokens
	// (for example, a whitespace-only string).
	ErrNoTokens = errors.New("rule text produced no tokens")
)

// Sentinel errors for condition evaluation.
var (
	// ErrInvalidCondition indicates a leaf condition does not match the
	// "field comparator literal" shape.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrFieldNotFound indicates the condition references a field absent
	// from the record.
	ErrFieldNotFound = errors.New("field not found in data")

	// ErrUnsupportedOperator indicates a comparator outside the supported
	// set (> < >= <= == != =).
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrTypeMismatch indicates a literal that cannot be coerced to the
	// type of the record's field value.
	ErrTypeMismatch = errors.New("literal type does not match field type")
)

// Sentinel errors for serialization and batch combination.
var (
	// ErrMissingNodeField indicates an attribute map without the required
	// node_type or value keys.
	ErrMissingNodeField = errors.New(`attribute map missing "node_type" or "value"`)

	// ErrNoValidRules indicates every rule in a CombineRules batch failed
	// to parse, leaving nothing to combine.
	ErrNoValidRules = errors.New("no valid rules to combine")
)

// ParseError describes a malformed token sequence.
// It carries the specific cause for diagnostics.
type ParseError struct {
	// Reason is the human-readable cause.
	Reason string
	// Token is the offending token, when one can be identified.
	Token string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Token)
	}
	return e.Reason
}

// ConditionError describes a leaf condition that could not be evaluated.
type ConditionError struct {
	// Condition is the leaf condition text.
	Condition string
	// Field is the referenced field, when the condition parsed far
	// enough to identify one.
	Field string
	// Err is the underlying cause (one of the condition sentinels).
	Err error
}

// Error implements the error interface.
func (e *ConditionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrFieldNotFound):
		return fmt.Sprintf("field '%s' not found in data", e.Field)
	case e.Field != "":
		return fmt.Sprintf("%v in condition %q (field '%s')", e.Err, e.Condition, e.Field)
	default:
		return fmt.Sprintf("%v: %q", e.Err, e.Condition)
	}
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *ConditionError) Unwrap() error {
	return e.Err
}
