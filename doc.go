// Package orderedyaml renders nested data as block-structured YAML with a
// caller-imposed, deterministic key order.
//
// Orders are addressed by structural path and come from an example document
// (whose own key order is the template), from wildcarded path patterns, or
// both, with patterns taking precedence:
//
//	doc, err := orderedyaml.New(data,
//	    orderedyaml.WithRules(order.Rules{
//	        {Pattern: "spec.containers[].name", Keys: []string{"name", "image", "ports"}},
//	    }),
//	)
//	if err != nil {
//	    ...
//	}
//	err = doc.Encode(os.Stdout)
//
// A resolved key order is a prefix override, not a filter: keys the rule does
// not mention keep their natural order after the listed ones, and no key is
// ever dropped.
//
// See the order package for the pattern grammar, the decode package for
// order-preserving ingestion of YAML/JSON bytes, and the encode package for
// the block-style emitter and its indentation knobs.
package orderedyaml
