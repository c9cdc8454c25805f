// Package decode parses YAML (and therefore JSON) bytes into an ordered
// ir.Node tree.
//
// Go maps cannot carry a document's key order, so byte inputs go through
// yaml.Node, which records mapping entries in source order. This is how
// template documents and rule files keep a meaningful natural order.
package decode

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sgriffith3/orderedYAML/ir"
)

// Parse decodes the first YAML document in d into an ir.Node, preserving
// mapping key order. Anchors and aliases are resolved; custom tags are
// rejected.
func Parse(d []byte) (*ir.Node, error) {
	var yn yaml.Node
	if err := yaml.Unmarshal(d, &yn); err != nil {
		return nil, err
	}
	if yn.Kind == 0 {
		// empty input
		return ir.Null(), nil
	}
	return FromYAML(&yn)
}

// FromYAML converts a parsed yaml.Node into an ir.Node.
func FromYAML(yn *yaml.Node) (*ir.Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return ir.Null(), nil
		}
		if len(yn.Content) > 1 {
			return nil, fmt.Errorf("line %d: multi-document input is not supported", yn.Line)
		}
		return FromYAML(yn.Content[0])
	case yaml.AliasNode:
		return FromYAML(yn.Alias)
	case yaml.MappingNode:
		kvs := make([]ir.KeyVal, 0, len(yn.Content)/2)
		for i := 0; i+1 < len(yn.Content); i += 2 {
			keyNode := yn.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: non-scalar mapping key", keyNode.Line)
			}
			val, err := FromYAML(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyNode.Value, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(yn.Content))
		for i, el := range yn.Content {
			val, err := FromYAML(el)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.ScalarNode:
		return fromScalar(yn)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", yn.Line, yn.Kind)
	}
}

func fromScalar(yn *yaml.Node) (*ir.Node, error) {
	switch yn.Tag {
	case "!!null", "":
		return ir.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(yn.Value)
		if err != nil {
			// YAML 1.1 spellings beyond true/false
			switch yn.Value {
			case "yes", "Yes", "YES", "on", "On", "ON":
				b = true
			case "no", "No", "NO", "off", "Off", "OFF":
				b = false
			default:
				return nil, fmt.Errorf("line %d: bad bool %q", yn.Line, yn.Value)
			}
		}
		return ir.FromBool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(yn.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad int %q", yn.Line, yn.Value)
		}
		return ir.FromInt(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(yn.Value, 64)
		if err != nil {
			switch yn.Value {
			case ".inf", ".Inf", "+.inf":
				f = math.Inf(1)
			case "-.inf", "-.Inf":
				f = math.Inf(-1)
			case ".nan", ".NaN":
				f = math.NaN()
			default:
				return nil, fmt.Errorf("line %d: bad float %q", yn.Line, yn.Value)
			}
		}
		return ir.FromFloat(f), nil
	case "!!str":
		return ir.FromString(yn.Value), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported tag %s", yn.Line, yn.Tag)
	}
}
