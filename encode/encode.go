package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sgriffith3/orderedYAML/ir"
)

var ErrEncoding = errors.New("encoding error")

// EncState carries the block-style layout configuration: mapping-level
// indent, sequence-level indent, and the offset of the dash within the
// sequence indent.
type EncState struct {
	indent    int
	seqIndent int
	seqOffset int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders node as block-structured YAML to w. Object key order and
// array element order are emitted exactly as they appear in the tree.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &EncState{
		indent:    2,
		seqIndent: 4,
		seqOffset: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		return fmt.Errorf("%w: mapping indent %d < 1", ErrEncoding, es.indent)
	}
	if es.seqOffset < 0 || es.seqOffset >= es.seqIndent {
		return fmt.Errorf("%w: sequence offset %d must fit in sequence indent %d",
			ErrEncoding, es.seqOffset, es.seqIndent)
	}
	return encode(node, w, es, "", false)
}

// encode writes node as one or more complete lines. prefix is the
// indentation owed on every line; when inline is set the first line's prefix
// has already been written by the caller (after "key:" or a dash).
func encode(node *ir.Node, w io.Writer, es *EncState, prefix string, inline bool) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es, prefix, inline)
	case ir.ArrayType:
		return encodeArray(node, w, es, prefix, inline)
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		lead := prefix
		if inline {
			lead = ""
		}
		return writeString(w, lead+scalarText(node, es)+"\n")
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, prefix string, inline bool) error {
	if len(node.Keys) == 0 {
		return writeFlowEmpty(w, es, ir.ObjectType, "{}", prefix, inline)
	}
	for i, key := range node.Keys {
		lead := prefix
		if i == 0 && inline {
			lead = ""
		}
		if err := writeString(w, lead+fieldText(key, es)); err != nil {
			return err
		}
		val := node.Values[i]
		switch {
		case val.Type.IsLeaf():
			if err := writeString(w, " "+scalarText(val, es)+"\n"); err != nil {
				return err
			}
		case val.Type == ir.ObjectType && len(val.Keys) == 0:
			if err := writeString(w, " "+applyColor(es, ir.ObjectType, ValueColor, "{}")+"\n"); err != nil {
				return err
			}
		case val.Type == ir.ArrayType && len(val.Values) == 0:
			if err := writeString(w, " "+applyColor(es, ir.ArrayType, ValueColor, "[]")+"\n"); err != nil {
				return err
			}
		case val.Type == ir.ObjectType:
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			childPrefix := prefix + strings.Repeat(" ", es.indent)
			if err := encodeObject(val, w, es, childPrefix, false); err != nil {
				return err
			}
		default:
			// non-empty array under a key: items indent from the key column
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := encodeArray(val, w, es, prefix, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState, prefix string, inline bool) error {
	if len(node.Values) == 0 {
		return writeFlowEmpty(w, es, ir.ArrayType, "[]", prefix, inline)
	}
	var dashLead, contPrefix string
	if inline {
		// nested directly under another dash: the first dash sits at the
		// cursor, later dashes align under it
		dashLead = prefix
		contPrefix = prefix + "  "
	} else {
		dashLead = prefix + strings.Repeat(" ", es.seqOffset)
		contPrefix = prefix + strings.Repeat(" ", es.seqIndent)
	}
	dash := "-" + strings.Repeat(" ", len(contPrefix)-len(dashLead)-1)
	dash = applyColor(es, ir.ArrayType, SepColor, "-") + dash[1:]
	for i, val := range node.Values {
		lead := dashLead
		if i == 0 && inline {
			lead = ""
		}
		if err := writeString(w, lead+dash); err != nil {
			return err
		}
		if err := encode(val, w, es, contPrefix, true); err != nil {
			return err
		}
	}
	return nil
}

func writeFlowEmpty(w io.Writer, es *EncState, t ir.Type, text, prefix string, inline bool) error {
	lead := prefix
	if inline {
		lead = ""
	}
	return writeString(w, lead+applyColor(es, t, ValueColor, text)+"\n")
}

func fieldText(key string, es *EncState) string {
	text := key
	if needsQuote(key) {
		text = quote(key)
	}
	return applyColor(es, ir.ObjectType, FieldColor, text) +
		applyColor(es, ir.ObjectType, SepColor, ":")
}

func scalarText(node *ir.Node, es *EncState) string {
	switch node.Type {
	case ir.StringType:
		v := node.String
		if needsQuote(v) {
			v = quote(v)
		}
		return applyColor(es, ir.StringType, ValueColor, v)
	case ir.NumberType:
		return applyColor(es, ir.NumberType, ValueColor, numberText(node))
	case ir.BoolType:
		return applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return applyColor(es, ir.NullType, ValueColor, "null")
	default:
		panic("type")
	}
}

func numberText(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		f := *node.Float64
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// keep a float mark so the scalar still reads as a float
		if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
			s += ".0"
		}
		return s
	}
	return node.Number
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
