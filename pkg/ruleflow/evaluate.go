package ruleflow

// Evaluate recursively walks a compiled tree against a record and
// returns the boolean decision.
//
// A nil node evaluates to false. So does a node whose type is neither
// NodeOperator nor NodeOperand, or an operator node whose value is
// neither "AND" nor "OR". This terminal fallback is deliberately
// asymmetric with EvaluateCondition's strict failures (see the package
// documentation); the only errors Evaluate returns are ConditionErrors
// propagated from leaf conditions.
//
// Both children of an operator node are evaluated; leaves are pure, so
// there are no side effects to short-circuit away.
func Evaluate(node *Node, record map[string]any) (bool, error) {
	if node == nil {
		return false, nil
	}

	switch node.Type {
	case NodeOperator:
		left, err := Evaluate(node.Left, record)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(node.Right, record)
		if err != nil {
			return false, err
		}
		switch node.Value {
		case "AND":
			return left && right, nil
		case "OR":
			return left || right, nil
		}
		return false, nil

	case NodeOperand:
		return EvaluateCondition(node.Value, record)
	}

	return false, nil
}
