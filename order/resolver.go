package order

import (
	"github.com/sgriffith3/orderedYAML/debug"
	"github.com/sgriffith3/orderedYAML/ir"
)

// Resolver decides the key order to use for a mapping node at a structural
// path. It merges two independent rule providers with fixed priority: pattern
// rules, tried in declaration order, and exact rules derived from a template
// document. A Resolver is read-only after construction and safe for
// concurrent use.
type Resolver struct {
	patterns []*Pattern
	exact    ExactRules
}

// NewResolver compiles rules and derives exact rules from the template.
// Either argument may be empty or nil. A malformed pattern fails with a
// *ConfigError.
func NewResolver(rules Rules, template *ir.Node) (*Resolver, error) {
	patterns, err := CompilePatterns(rules)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		patterns: patterns,
		exact:    FromTemplate(template),
	}, nil
}

// Resolve returns the key order for a mapping node at path. Pattern rules are
// tried first in declaration order; if none match, the exact-rule table is
// consulted; if neither yields a result, ok is false and the node's own
// natural key order applies. The returned slice is shared and must not be
// modified.
func (r *Resolver) Resolve(path Path) (keys []string, ok bool) {
	for _, p := range r.patterns {
		if p.Match(path) || p.MatchEntry(path) {
			if debug.Resolve() {
				debug.Logf("resolve %q: pattern %q -> %v\n", path, p.Source(), p.Keys())
			}
			return p.Keys(), true
		}
	}
	if keys, ok := r.exact.Lookup(path); ok {
		if debug.Resolve() {
			debug.Logf("resolve %q: exact -> %v\n", path, keys)
		}
		return keys, true
	}
	if debug.Resolve() {
		debug.Logf("resolve %q: natural order\n", path)
	}
	return nil, false
}
