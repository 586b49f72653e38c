package id3

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/connectGo/internal/generics"
)

// Entropy in bits of the distribution of labels.
func Entropy(labels []string) float64 {
	if len(labels) == 0 {
		return 0
	}
	counts := make(map[string]int)
	for _, label := range labels {
		counts[label]++
	}
	total := float64(len(labels))
	var entropy float64
	for _, count := range counts {
		prob := float64(count) / total
		entropy -= prob * math.Log2(prob)
	}
	return entropy
}

// InformationGain of splitting rows on attribute, measured over the target labels: the entropy of
// the target minus the weighted entropy of the target within each subset.
func InformationGain(rows []Row, attribute, target string) float64 {
	if len(rows) == 0 {
		return 0
	}
	values, subsets := partition(rows, attribute)
	gain := Entropy(labelsOf(rows, target))
	total := float64(len(rows))
	for _, value := range values {
		subset := subsets[value]
		gain -= float64(len(subset)) / total * Entropy(labelsOf(subset, target))
	}
	return gain
}

// Induce builds a decision tree with the ID3 algorithm:
//
//   - If all rows have the same target label, it returns a leaf with it.
//   - If there are no attributes left, it returns a leaf with the majority label.
//   - Otherwise, it splits on the attribute with the highest information gain, with one branch per
//     value observed in rows, and recurses without that attribute.
//
// Ties in information gain go to the first attribute in the given order, and ties in majority
// go to the label seen first. It panics if rows is empty.
func Induce(rows []Row, attributes []string, target string) Node {
	if len(rows) == 0 {
		exceptions.Panicf("id3.Induce requires at least one row")
	}
	labels := labelsOf(rows, target)
	majority, numLabels := majorityLabel(labels)
	if numLabels == 1 {
		return &Leaf{Label: majority}
	}
	if len(attributes) == 0 {
		return &Leaf{Label: majority}
	}

	bestIdx, bestGain := 0, math.Inf(-1)
	for idx, attribute := range attributes {
		if gain := InformationGain(rows, attribute, target); gain > bestGain {
			bestIdx, bestGain = idx, gain
		}
	}
	best := attributes[bestIdx]
	remaining := generics.Filter(attributes, func(attribute string) bool { return attribute != best })

	values, subsets := partition(rows, best)
	node := &Internal{
		Attribute: best,
		Values:    values,
		Branches:  make(map[string]Node, len(values)),
		Majority:  majority,
	}
	for _, value := range values {
		subset := subsets[value]
		if len(subset) == 0 {
			node.Branches[value] = &Leaf{Label: majority}
			continue
		}
		node.Branches[value] = Induce(subset, remaining, target)
	}
	return node
}

// partition rows by the value of attribute. Values are returned in first-seen order.
// A missing attribute is taken as the empty value.
func partition(rows []Row, attribute string) (values []string, subsets map[string][]Row) {
	subsets = make(map[string][]Row)
	for _, row := range rows {
		value := row[attribute]
		if _, found := subsets[value]; !found {
			values = append(values, value)
		}
		subsets[value] = append(subsets[value], row)
	}
	return
}

func labelsOf(rows []Row, target string) []string {
	labels := make([]string, len(rows))
	for ii, row := range rows {
		labels[ii] = row[target]
	}
	return labels
}

// majorityLabel returns the most frequent label, ties going to the one seen first, and the number of
// distinct labels.
func majorityLabel(labels []string) (majority string, numLabels int) {
	counts := make(map[string]int)
	var order []string
	for _, label := range labels {
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			majority, bestCount = label, counts[label]
		}
	}
	return majority, len(order)
}
