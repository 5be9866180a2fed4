package ruleflow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// conditionPattern matches one leaf condition: an identifier, a
// comparator, and a literal that is either plain digits (optionally
// decimal) or a quoted string.
var conditionPattern = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_.]*)\s*([<>!=]=?)\s*(\d+(\.\d+)?|'.*?'|".*?")`)

// EvaluateCondition evaluates a single leaf condition against a record.
//
// The condition must have the shape "field comparator literal". The
// record's value for the field selects the comparison mode: numeric
// values coerce the literal to a number (float if it contains a decimal
// point, integer otherwise), everything else compares as strings with
// surrounding quotes stripped from the literal. '=' is an alias for
// '=='.
//
// Failures are *ConditionError values wrapping ErrInvalidCondition,
// ErrFieldNotFound, ErrTypeMismatch, or ErrUnsupportedOperator. A
// missing field is always an error, never false.
func EvaluateCondition(condition string, record map[string]any) (bool, error) {
	m := conditionPattern.FindStringSubmatch(condition)
	if m == nil {
		return false, &ConditionError{Condition: condition, Err: ErrInvalidCondition}
	}
	field, op, literal := m[1], m[2], m[3]

	fieldValue, ok := record[field]
	if !ok {
		return false, &ConditionError{Condition: condition, Field: field, Err: ErrFieldNotFound}
	}

	// Quotes are stripped before coercion, so a quoted number still
	// compares numerically against a numeric field.
	literal = stripQuotes(literal)

	if op == "=" {
		op = "=="
	}

	if fv, numeric := toFloat(fieldValue); numeric {
		lv, err := parseNumericLiteral(literal)
		if err != nil {
			return false, &ConditionError{Condition: condition, Field: field, Err: ErrTypeMismatch}
		}
		return compareFloats(fv, lv, op, condition, field)
	}
	return compareStrings(fmt.Sprintf("%v", fieldValue), literal, op, condition, field)
}

// stripQuotes removes one matching pair of surrounding single or double
// quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) ||
			(strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// parseNumericLiteral coerces a literal for comparison against a numeric
// field: float when it contains a decimal point, integer otherwise.
func parseNumericLiteral(literal string) (float64, error) {
	if strings.Contains(literal, ".") {
		return strconv.ParseFloat(literal, 64)
	}
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

// toFloat reports whether v is a numeric record value and converts it.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compareFloats(left, right float64, op, condition, field string) (bool, error) {
	switch op {
	case ">":
		return left > right, nil
	case "<":
		return left < right, nil
	case "==":
		return left == right, nil
	case "!=":
		return left != right, nil
	case ">=":
		return left >= right, nil
	case "<=":
		return left <= right, nil
	default:
		return false, &ConditionError{Condition: condition, Field: field, Err: ErrUnsupportedOperator}
	}
}

func compareStrings(left, right, op, condition, field string) (bool, error) {
	switch op {
	case ">":
		return left > right, nil
	case "<":
		return left < right, nil
	case "==":
		return left == right, nil
	case "!=":
		return left != right, nil
	case ">=":
		return left >= right, nil
	case "<=":
		return left <= right, nil
	default:
		return false, &ConditionError{Condition: condition, Field: field, Err: ErrUnsupportedOperator}
	}
}
