// Package id3 implements the ID3 decision tree learner over categorical attributes, its classifier,
// and a searchers.Searcher that predicts moves with a trained tree.
//
// Trees are immutable after induction and can be shared by concurrent classifications.
package id3

// Row is one example: a value for each attribute name, including the target when used for training.
type Row map[string]string

// Node of a decision tree: either a *Leaf or an *Internal node.
type Node interface {
	isNode()
}

// Leaf holds the label predicted for the examples reaching it.
type Leaf struct {
	Label string
}

// Internal node splits the examples on the value of Attribute.
type Internal struct {
	Attribute string

	// Values observed for Attribute during training, in first-seen order.
	Values []string

	// Branches holds one subtree per value in Values.
	Branches map[string]Node

	// Majority label of the training rows at this node.
	Majority string
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// Classify descends the tree following the example's attribute values, and returns the label of the
// leaf reached.
//
// It returns ok=false (the "unknown" result) if the example has a value not observed during
// training at some node, or if it is missing the attribute.
func Classify(example Row, node Node) (label string, ok bool) {
	for {
		switch n := node.(type) {
		case *Leaf:
			return n.Label, true
		case *Internal:
			value, found := example[n.Attribute]
			if !found {
				return "", false
			}
			node, found = n.Branches[value]
			if !found {
				return "", false
			}
		default:
			return "", false
		}
	}
}
