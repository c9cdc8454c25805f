package orderedyaml

import (
	"bytes"
	"io"

	"github.com/sgriffith3/orderedYAML/encode"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/order"
)

type config struct {
	template     any
	templateNode *ir.Node
	rules        order.Rules
	encOpts      []encode.Option
}

type Option func(*config)

// WithTemplate supplies an example document whose own key order becomes the
// ordering template: at every mapping node of the example, the keys at that
// path are emitted first, in the example's order. The example is converted
// like the document data, so raw Go maps get sorted key order; pass an
// ir.Node (see WithTemplateNode or the decode package) when the template's
// source order matters.
func WithTemplate(example any) Option {
	return func(c *config) { c.template = example }
}

// WithTemplateNode supplies a pre-built template tree.
func WithTemplateNode(node *ir.Node) Option {
	return func(c *config) { c.templateNode = node }
}

// WithRules supplies pattern ordering rules, tried in slice order. Pattern
// rules take precedence over a template.
func WithRules(rules order.Rules) Option {
	return func(c *config) { c.rules = append(c.rules, rules...) }
}

// WithRuleMap supplies pattern rules from a Go map; patterns are ordered by
// sorted pattern string since map iteration order is not deterministic.
func WithRuleMap(m map[string][]string) Option {
	return func(c *config) { c.rules = append(c.rules, order.RulesFromMap(m)...) }
}

// WithIndent configures the block-style layout of the rendered output:
// mapping-level indent, sequence-level indent, and the dash offset within
// the sequence indent.
func WithIndent(mapping, sequence, offset int) Option {
	return func(c *config) {
		c.encOpts = append(c.encOpts,
			encode.Indent(mapping),
			encode.SequenceIndent(sequence),
			encode.SequenceOffset(offset),
		)
	}
}

// WithEncodeOptions passes options through to the emitter.
func WithEncodeOptions(opts ...encode.Option) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}

// Document is a nested document reshaped into a deterministic key order,
// ready to render. Documents are immutable after construction and safe for
// concurrent use.
type Document struct {
	node    *ir.Node
	encOpts []encode.Option
}

// New converts data (raw Go values or a pre-built *ir.Node) into an ordered
// tree, applying the ordering rules from opts. Rule compilation errors and
// unsupported input values are reported here, before anything is rendered.
func New(data any, opts ...Option) (*Document, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	template := cfg.templateNode
	if template == nil && cfg.template != nil {
		t, err := ir.FromGo(cfg.template)
		if err != nil {
			return nil, err
		}
		template = t
	}
	resolver, err := order.NewResolver(cfg.rules, template)
	if err != nil {
		return nil, err
	}
	raw, err := ir.FromGo(data)
	if err != nil {
		return nil, err
	}
	node, err := Reshape(raw, resolver)
	if err != nil {
		return nil, err
	}
	return &Document{
		node:    node,
		encOpts: cfg.encOpts,
	}, nil
}

// Node returns the ordered tree. The tree is shared with the Document and
// must not be modified.
func (d *Document) Node() *ir.Node {
	return d.node
}

// Encode renders the ordered document to w.
func (d *Document) Encode(w io.Writer) error {
	return encode.Encode(d.node, w, d.encOpts...)
}

// String renders the ordered document to a string. Output is byte-identical
// to what Encode writes.
func (d *Document) String() (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := d.Encode(buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
