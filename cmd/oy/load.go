package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sgriffith3/orderedYAML/decode"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/order"
)

func openInput(file string) (*os.File, func(), error) {
	if file == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, func() { f.Close() }, nil
}

func loadNode(file string) (*ir.Node, error) {
	f, done, err := openInput(file)
	if err != nil {
		return nil, err
	}
	defer done()
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	node, err := decode.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return node, nil
}

// loadRules reads a rule file: a YAML mapping from path pattern to list of
// keys. The decoder preserves the mapping order, which becomes the rule
// precedence.
func loadRules(file string) (order.Rules, error) {
	node, err := loadNode(file)
	if err != nil {
		return nil, err
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("rule file %q: expected a mapping, got %s", file, node.Type)
	}
	rules := make(order.Rules, 0, len(node.Keys))
	for i, pattern := range node.Keys {
		val := node.Values[i]
		if val.Type != ir.ArrayType {
			return nil, fmt.Errorf("rule file %q: pattern %q: expected a list of keys, got %s",
				file, pattern, val.Type)
		}
		keys := make([]string, len(val.Values))
		for j, el := range val.Values {
			if el.Type != ir.StringType {
				return nil, fmt.Errorf("rule file %q: pattern %q: key %d is not a string",
					file, pattern, j)
			}
			keys[j] = el.String
		}
		rules = append(rules, order.Rule{Pattern: pattern, Keys: keys})
	}
	return rules, nil
}
