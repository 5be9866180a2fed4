package ruleflow_test

import (
	"testing"

	"github.com/randalmurphal/ruleflow/pkg/ruleflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCondition(t *testing.T) {
	record := map[string]any{
		"age":        30,
		"salary":     50000.0,
		"department": "Sales",
		"zip":        "10001",
	}

	tests := []struct {
		condition string
		want      bool
	}{
		// Numeric comparisons
		{"age > 29", true},
		{"age > 30", false},
		{"age >= 30", true},
		{"age < 31", true},
		{"age <= 29", false},
		{"age == 30", true},
		{"age != 30", false},
		{"salary >= 50000.00", true},
		{"salary > 49999.99", true},
		{"salary < 50000.01", true},

		// '=' is an alias for '=='
		{"age = 30", true},
		{"department = 'Sales'", true},

		// String comparisons are case-sensitive
		{"department == 'Sales'", true},
		{"department == 'sales'", false},
		{"department != 'Marketing'", true},
		{`department == "Sales"`, true},

		// String ordering
		{"department < 'T'", true},
		{"department > 'Z'", false},

		// A string field compares as text even for numeric literals
		{"zip == 10001", true},
		{"zip != 10002", true},

		// Quotes are stripped before numeric coercion
		{"age == '30'", true},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			got, err := ruleflow.EvaluateCondition(tt.condition, record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateConditionNumericKinds(t *testing.T) {
	// Records decoded from JSON carry float64; in-process records carry
	// native int kinds. Both compare numerically.
	for name, value := range map[string]any{
		"int":     31,
		"int64":   int64(31),
		"float64": 31.0,
		"uint":    uint(31),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ruleflow.EvaluateCondition("age > 30", map[string]any{"age": value})
			require.NoError(t, err)
			assert.True(t, got)
		})
	}
}

func TestEvaluateConditionErrors(t *testing.T) {
	record := map[string]any{"age": 30, "department": "Sales"}

	t.Run("MissingFieldIsAnError", func(t *testing.T) {
		_, err := ruleflow.EvaluateCondition("salary > 1000", record)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruleflow.ErrFieldNotFound)
		assert.Equal(t, "field 'salary' not found in data", err.Error())
	})

	t.Run("InvalidShape", func(t *testing.T) {
		for _, condition := range []string{"age >", "> 30", "age", "age > > 30", ""} {
			_, err := ruleflow.EvaluateCondition(condition, record)
			assert.ErrorIs(t, err, ruleflow.ErrInvalidCondition, "condition %q", condition)
		}
	})

	t.Run("UnsupportedOperator", func(t *testing.T) {
		_, err := ruleflow.EvaluateCondition("age ! 30", record)
		assert.ErrorIs(t, err, ruleflow.ErrUnsupportedOperator)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := ruleflow.EvaluateCondition("age == 'thirty'", record)
		require.Error(t, err)
		assert.ErrorIs(t, err, ruleflow.ErrTypeMismatch)

		var cerr *ruleflow.ConditionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "age", cerr.Field)
	})
}
