package ruleflow

import (
	"regexp"
	"strings"
)

// Operator precedence. AND binds tighter than OR; both are
// left-associative.
var precedence = map[string]int{
	"AND": 1,
	"OR":  0,
}

var (
	identPrefix      = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*`)
	comparatorPrefix = regexp.MustCompile(`^[<>!=]+`)
)

// Parse consumes a token sequence and produces the root of an abstract
// syntax tree using a two-stack shunting-yard pass: completed subtrees
// accumulate on an output stack while pending '(' and AND/OR markers sit
// on an operator stack. An identifier followed by a comparator and one
// more token is recognized as a complete three-token leaf condition.
//
// Malformed input returns a *ParseError carrying the specific cause.
func Parse(tokens []string) (*Node, error) {
	var output []*Node
	var operators []string

	// reduce pops one operator and two subtrees, pushing the combined
	// operator node.
	reduce := func(reason string) error {
		if len(output) < 2 {
			return &ParseError{Reason: reason}
		}
		right := output[len(output)-1]
		left := output[len(output)-2]
		op := operators[len(operators)-1]
		output = output[:len(output)-2]
		operators = operators[:len(operators)-1]
		output = append(output, newOperator(op, left, right))
		return nil
	}

	i := 0
	for i < len(tokens) {
		token := tokens[i]

		switch {
		case token == "(":
			operators = append(operators, token)
			i++

		case token == ")":
			for len(operators) > 0 && operators[len(operators)-1] != "(" {
				if err := reduce("incomplete expression before closing parenthesis"); err != nil {
					return nil, err
				}
			}
			if len(operators) == 0 {
				return nil, &ParseError{Reason: "unmatched closing parenthesis"}
			}
			operators = operators[:len(operators)-1] // discard the '('
			i++

		case token == "AND" || token == "OR":
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if _, ok := precedence[top]; !ok || precedence[top] < precedence[token] {
					break
				}
				if err := reduce("incomplete expression during operator processing"); err != nil {
					return nil, err
				}
			}
			operators = append(operators, token)
			i++

		case identPrefix.MatchString(token) && i+2 < len(tokens) && comparatorPrefix.MatchString(tokens[i+1]):
			// Three-token leaf: field comparator literal, rejoined with
			// single spaces.
			condition := strings.Join([]string{token, tokens[i+1], tokens[i+2]}, " ")
			output = append(output, newOperand(condition))
			i += 3

		default:
			return nil, &ParseError{Reason: "invalid token or incomplete expression", Token: token}
		}
	}

	for len(operators) > 0 {
		if operators[len(operators)-1] == "(" {
			return nil, &ParseError{Reason: "unmatched opening parenthesis"}
		}
		if err := reduce("incomplete expression at end of parsing"); err != nil {
			return nil, err
		}
	}

	if len(output) != 1 {
		return nil, &ParseError{Reason: "invalid expression: check operator and operand count"}
	}
	return output[0], nil
}

// CreateRule compiles rule text into an abstract syntax tree. It is the
// compile-rule operation: tokenize, then parse. Empty text returns
// ErrEmptyRule; text yielding no tokens returns ErrNoTokens; malformed
// token sequences return a *ParseError.
func CreateRule(rule string) (*Node, error) {
	tokens, err := Tokenize(rule)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return Parse(tokens)
}
