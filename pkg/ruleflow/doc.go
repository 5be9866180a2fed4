/*
Package ruleflow compiles textual eligibility rules into abstract syntax
trees and evaluates them against records of named field values.

# Overview

A rule is a boolean expression over field comparisons, combined with AND
and OR and grouped with parentheses:

	age > 30 AND department = 'Sales'
	(age > 30 AND department == 'Sales') OR experience > 5

CreateRule tokenizes the text, parses it with a two-stack shunting-yard
algorithm (AND binds tighter than OR, both left-associative) and returns
the root of a binary tree. Evaluate walks the tree against a record,
delegating each leaf condition to EvaluateCondition.

	node, err := ruleflow.CreateRule("age > 30 AND department = 'Sales'")
	if err != nil {
	    // malformed rule text
	}
	ok, err := ruleflow.Evaluate(node, map[string]any{
	    "age":        35,
	    "department": "Sales",
	})

# Rule Syntax

	<rule>       := <comparison>
	             | <rule> 'AND' <rule>
	             | <rule> 'OR' <rule>
	             | '(' <rule> ')'

	<comparison> := <field> <op> <literal>
	<field>      := identifier ([a-zA-Z_][a-zA-Z0-9_.]*)
	<op>         := '>' | '<' | '>=' | '<=' | '==' | '!=' | '='
	<literal>    := number | 'string' | "string"

A comparison is always exactly three tokens. There is no negation,
arithmetic, or function-call syntax.

# Condition Semantics

When the record's value for a field is numeric, the literal is coerced
to a number (float if it contains a decimal point, integer otherwise)
and the comparison is numeric. Otherwise both sides are compared as
strings, with surrounding quotes stripped from the literal. '=' is an
alias for '=='. A literal that cannot be coerced to match a numeric
field is a ConditionError wrapping ErrTypeMismatch.

A field that is absent from the record is always an error
(ErrFieldNotFound), never a silent false.

# Trees

Nodes form a closed two-variant union: operator nodes ("AND"/"OR" with
two children) and operand nodes (one leaf condition, no children).
Trees are acyclic, exclusively owned by their caller, and immutable once
built. ToMap and NodeFromMap define the serialization contract: a plain
attribute map with node_type, value, and left/right only when present.

Inherited quirk: Evaluate treats a nil node or an unrecognized node type
as false rather than an error, while EvaluateCondition fails hard on a
missing field or unsupported operator. The asymmetry is preserved for
drop-in compatibility with the behavior this package replaces.

# Combining Rules

CombineRules parses a batch of rule texts and folds the resulting trees
with OR, left-leaning, in input order. Rules that fail to parse are
logged and skipped; only a batch in which every rule fails returns an
error (ErrNoValidRules).

# Engine

The package-level functions are pure and allocate no shared state, so
they are safe for concurrent use. Engine wraps them with structured
logging, OpenTelemetry metrics, and tracing:

	eng := ruleflow.New(
	    ruleflow.WithLogger(slog.Default()),
	    ruleflow.WithMetrics(),
	    ruleflow.WithTracing(),
	)
	node, err := eng.CreateRule(ctx, "age > 30")
	ok, err := eng.Evaluate(ctx, node, record)
*/
package ruleflow
