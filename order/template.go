package order

import (
	"slices"

	"github.com/sgriffith3/orderedYAML/ir"
)

// ExactRules maps a canonical path rendering to an explicit key order. Index
// steps are normalized to 0 in the keys: template rules are derived from the
// first element of each list and shared by all of its elements.
type ExactRules map[string][]string

// FromTemplate derives exact rules from an example document by recording, at
// every object node, the node's keys in document order. Lists contribute no
// rule themselves; the walk descends into the first element only, under index
// 0, to capture a representative order for the element schema. Empty lists
// contribute nothing.
func FromTemplate(example *ir.Node) ExactRules {
	rules := ExactRules{}
	if example != nil {
		fromTemplate(example, Path{}, rules)
	}
	return rules
}

func fromTemplate(node *ir.Node, path Path, rules ExactRules) {
	switch node.Type {
	case ir.ObjectType:
		rules[path.ruleKey()] = slices.Clone(node.Keys)
		for i, key := range node.Keys {
			fromTemplate(node.Values[i], path.Field(key), rules)
		}
	case ir.ArrayType:
		if len(node.Values) > 0 {
			fromTemplate(node.Values[0], path.Elem(0), rules)
		}
	}
}

// Lookup returns the key order recorded for the path, if any.
func (r ExactRules) Lookup(path Path) ([]string, bool) {
	keys, ok := r[path.ruleKey()]
	return keys, ok
}
