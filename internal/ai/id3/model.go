package id3

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/janpfeifer/connectGo/internal/generics"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TrainedModel is a decision tree along with the names of the attributes and target it was
// trained on. It is immutable and safe for concurrent use.
type TrainedModel struct {
	root       Node
	attributes []string
	target     string
	numRows    int
}

// Train induces a TrainedModel from rows. Each row must have the target set.
func Train(rows []Row, attributes []string, target string) (*TrainedModel, error) {
	if len(rows) == 0 {
		return nil, errors.New("id3: no rows to train on")
	}
	if target == "" {
		return nil, errors.New("id3: target attribute not given")
	}
	seen := generics.MakeSet[string](len(attributes))
	for _, attribute := range attributes {
		if attribute == target {
			return nil, errors.Errorf("id3: target %q can't also be one of the attributes", target)
		}
		if seen.Has(attribute) {
			return nil, errors.Errorf("id3: attribute %q given more than once", attribute)
		}
		seen.Insert(attribute)
	}
	for ii, row := range rows {
		if _, found := row[target]; !found {
			return nil, errors.Errorf("id3: row #%d is missing the target %q", ii, target)
		}
	}
	start := time.Now()
	m := &TrainedModel{
		root:       Induce(rows, attributes, target),
		attributes: slices.Clone(attributes),
		target:     target,
		numRows:    len(rows),
	}
	if klog.V(1).Enabled() {
		klog.Infof("id3: trained on %d rows in %s: depth=%d, leaves=%d",
			len(rows), time.Since(start), m.Depth(), m.NumLeaves())
	}
	return m, nil
}

// Classify the example. It returns ok=false if the example follows a branch not observed in training.
func (m *TrainedModel) Classify(example Row) (label string, ok bool) {
	return Classify(example, m.root)
}

// Target attribute name.
func (m *TrainedModel) Target() string { return m.target }

// Attributes the model was trained with.
func (m *TrainedModel) Attributes() []string { return slices.Clone(m.attributes) }

// NumRows used for training.
func (m *TrainedModel) NumRows() int { return m.numRows }

// Depth of the tree: the number of internal nodes in the longest path from the root.
func (m *TrainedModel) Depth() int {
	return depth(m.root)
}

func depth(node Node) int {
	n, ok := node.(*Internal)
	if !ok {
		return 0
	}
	maxDepth := 0
	for _, branch := range n.Branches {
		maxDepth = max(maxDepth, depth(branch))
	}
	return 1 + maxDepth
}

// NumLeaves in the tree.
func (m *TrainedModel) NumLeaves() int {
	return numLeaves(m.root)
}

func numLeaves(node Node) int {
	n, ok := node.(*Internal)
	if !ok {
		return 1
	}
	count := 0
	for _, branch := range n.Branches {
		count += numLeaves(branch)
	}
	return count
}

// String pretty-prints the tree, one line per branch, indented by depth. Each split is headed by
// its attribute and the majority label of the rows that reached it.
func (m *TrainedModel) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "id3 tree for %q (%d rows, depth=%d, leaves=%d):\n", m.target, m.numRows, m.Depth(), m.NumLeaves())
	writeNode(&sb, m.root, 1)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n := node.(type) {
	case *Leaf:
		fmt.Fprintf(sb, "%s-> %s\n", prefix, n.Label)
	case *Internal:
		fmt.Fprintf(sb, "%s[%s] majority=%s\n", prefix, n.Attribute, n.Majority)
		for _, value := range n.Values {
			branch := n.Branches[value]
			if leaf, ok := branch.(*Leaf); ok {
				fmt.Fprintf(sb, "%s%s=%s -> %s\n", prefix, n.Attribute, value, leaf.Label)
				continue
			}
			fmt.Fprintf(sb, "%s%s=%s:\n", prefix, n.Attribute, value)
			writeNode(sb, branch, indent+1)
		}
	}
}
