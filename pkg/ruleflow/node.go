package ruleflow

// NodeType discriminates the two node variants.
type NodeType string

// The closed set of node variants. The serialized names are part of the
// wire contract and must not change.
const (
	// NodeOperator combines two child trees with AND or OR.
	NodeOperator NodeType = "operator"

	// NodeOperand holds one atomic leaf condition
	// ("field comparator literal").
	NodeOperand NodeType = "operand"
)

// Node is one node of a compiled rule tree.
//
// An operator node has Value "AND" or "OR" and owns both children. An
// operand node has the verbatim condition text as its Value and no
// children. Nodes are immutable once constructed, each tree is acyclic,
// and no node is shared between two trees.
type Node struct {
	Type  NodeType `json:"node_type"`
	Value string   `json:"value"`
	Left  *Node    `json:"left,omitempty"`
	Right *Node    `json:"right,omitempty"`
}

// newOperator builds an operator node owning both subtrees.
func newOperator(op string, left, right *Node) *Node {
	return &Node{Type: NodeOperator, Value: op, Left: left, Right: right}
}

// newOperand builds a leaf node holding one condition.
func newOperand(condition string) *Node {
	return &Node{Type: NodeOperand, Value: condition}
}

// ToMap converts the tree to a plain attribute map, emitting node_type,
// value, and recursively left/right only when present. The result is
// suitable for JSON encoding and is the exact input NodeFromMap accepts.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}
	m := map[string]any{
		"node_type": string(n.Type),
		"value":     n.Value,
	}
	if n.Left != nil {
		m["left"] = n.Left.ToMap()
	}
	if n.Right != nil {
		m["right"] = n.Right.ToMap()
	}
	return m
}

// NodeFromMap reconstructs a tree from an attribute map. The map must
// contain node_type and value as strings; left and right are optional
// and recursively structured. A map missing a required key returns
// ErrMissingNodeField.
func NodeFromMap(m map[string]any) (*Node, error) {
	nodeType, okType := m["node_type"].(string)
	value, okValue := m["value"].(string)
	if !okType || !okValue {
		return nil, ErrMissingNodeField
	}

	n := &Node{Type: NodeType(nodeType), Value: value}

	if child, ok := m["left"].(map[string]any); ok {
		left, err := NodeFromMap(child)
		if err != nil {
			return nil, err
		}
		n.Left = left
	}
	if child, ok := m["right"].(map[string]any); ok {
		right, err := NodeFromMap(child)
		if err != nil {
			return nil, err
		}
		n.Right = right
	}

	return n, nil
}

// Equal reports whether two trees have the same structure, node types,
// and values.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Type == other.Type &&
		n.Value == other.Value &&
		n.Left.Equal(other.Left) &&
		n.Right.Equal(other.Right)
}
