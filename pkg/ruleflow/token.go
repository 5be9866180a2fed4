package ruleflow

import (
	"regexp"
	"strings"
)

// tokenPattern is the combined lexical pattern, tried leftmost-first at
// each position: whitespace, keywords, comparators (optionally followed
// by '='), parentheses, identifiers, quoted string literals. Spans the
// pattern does not match (numeric literals, stray text) still become
// tokens; the parser is responsible for rejecting the stray ones.
var tokenPattern = regexp.MustCompile(`(\s+|AND|OR|[()<>!=]=?|[a-zA-Z_][a-zA-Z0-9_.]*|'[^']*'|"[^"]*")`)

// Tokenize splits rule text into an ordered sequence of lexical tokens.
// Whitespace is discarded and never appears as a token.
//
// An empty string returns ErrEmptyRule. A whitespace-only string returns
// zero tokens and no error; callers compiling a rule must treat zero
// tokens as a failure (CreateRule returns ErrNoTokens).
func Tokenize(rule string) ([]string, error) {
	if rule == "" {
		return nil, ErrEmptyRule
	}

	var tokens []string
	emit := func(span string) {
		if strings.TrimSpace(span) != "" {
			tokens = append(tokens, span)
		}
	}

	pos := 0
	for _, m := range tokenPattern.FindAllStringIndex(rule, -1) {
		emit(rule[pos:m[0]]) // gap before the match
		emit(rule[m[0]:m[1]])
		pos = m[1]
	}
	emit(rule[pos:])

	return tokens, nil
}
