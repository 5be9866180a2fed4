package ruleflow

import (
	"log/slog"

	"github.com/randalmurphal/ruleflow/pkg/ruleflow/observability"
)

// CombineRules compiles a list of rule texts and folds the resulting
// trees into one tree with OR, left-leaning, preserving input order.
//
// A rule that fails to parse is logged (via slog.Default) and skipped;
// one malformed rule does not abort the batch. Only when zero rules
// parse successfully does CombineRules return an error, ErrNoValidRules.
// Callers must check the error rather than assume a valid tree.
func CombineRules(rules []string) (*Node, error) {
	logger := slog.Default()
	combined, _, _, err := combineRules(rules, func(rule string, cause error) {
		observability.LogRuleSkipped(logger, rule, cause)
	})
	return combined, err
}

// combineRules performs the OR fold, reporting each skipped rule through
// onSkip and returning how many rules were combined and skipped.
func combineRules(rules []string, onSkip func(rule string, cause error)) (*Node, int, int, error) {
	var combined *Node
	var folded, skipped int

	for _, rule := range rules {
		tree, err := CreateRule(rule)
		if err != nil {
			skipped++
			if onSkip != nil {
				onSkip(rule, err)
			}
			continue
		}
		if combined == nil {
			combined = tree
		} else {
			combined = newOperator("OR", combined, tree)
		}
		folded++
	}

	if combined == nil {
		return nil, 0, skipped, ErrNoValidRules
	}
	return combined, folded, skipped, nil
}
