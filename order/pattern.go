package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgriffith3/orderedYAML/ir"
)

// segment is one compiled pattern step. Exactly one of the four forms is set:
// a literal key, the key wildcard "*", a literal index "[n]", or the index
// wildcard "[]".
type segment struct {
	field    *string
	fieldAll bool
	index    *int
	indexAll bool
}

// Pattern is a compiled path pattern paired with the key order it selects.
type Pattern struct {
	source string
	segs   []segment
	keys   []string
}

// Source returns the pattern string the Pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// Keys returns the key order the pattern selects. The returned slice is
// shared and must not be modified.
func (p *Pattern) Keys() []string { return p.keys }

// Match reports whether the pattern matches the whole path. Matching is
// structural, step against segment: a literal key segment matches an equal
// map-key step, "*" matches any single map-key step, "[n]" matches the
// list-index step n, and "[]" matches any single list-index step. Patterns
// never match a prefix or a suffix of a longer path.
func (p *Pattern) Match(path Path) bool {
	if len(p.segs) != len(path) {
		return false
	}
	for i, seg := range p.segs {
		step := path[i]
		switch {
		case seg.fieldAll:
			if step.IsIndex() {
				return false
			}
		case seg.field != nil:
			if step.IsIndex() || step.Field() != *seg.field {
				return false
			}
		case seg.indexAll:
			if !step.IsIndex() {
				return false
			}
		case seg.index != nil:
			if !step.IsIndex() || step.Index() != *seg.index {
				return false
			}
		}
	}
	return true
}

// MatchEntry reports whether the pattern addresses an entry of the mapping at
// path: every segment but the last matches the path and the trailing segment
// is a literal key. Rules are often written this way, anchored at the entry
// they put first, e.g. "spec.containers[].name" ordering each container.
func (p *Pattern) MatchEntry(path Path) bool {
	n := len(p.segs)
	if n != len(path)+1 {
		return false
	}
	last := p.segs[n-1]
	if last.field == nil {
		return false
	}
	trimmed := &Pattern{segs: p.segs[:n-1]}
	return trimmed.Match(path)
}

// CompilePatterns compiles rules into matchers, preserving declaration order.
// A malformed pattern (empty pattern, empty step, unclosed bracket,
// non-integer index) fails compilation with a *ConfigError before any data
// is processed.
func CompilePatterns(rules Rules) ([]*Pattern, error) {
	res := make([]*Pattern, 0, len(rules))
	for _, rule := range rules {
		segs, err := parsePattern(rule.Pattern)
		if err != nil {
			return nil, &ConfigError{Pattern: rule.Pattern, Err: err}
		}
		res = append(res, &Pattern{
			source: rule.Pattern,
			segs:   segs,
			keys:   rule.Keys,
		})
	}
	return res, nil
}

// parsePattern splits a pattern string into segments. The grammar mirrors
// the textual path rendering: dot-separated key steps (optionally quoted),
// "*" for any single key, "[n]" for a literal index and "[]" for any index.
func parsePattern(src string) ([]segment, error) {
	if src == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	var segs []segment
	rest := src
	// A leading dot is not part of the grammar; every later segment consumes
	// its own separator.
	first := true
	for rest != "" {
		switch rest[0] {
		case '.':
			if first {
				return nil, fmt.Errorf("pattern starts with %q", '.')
			}
			if len(rest) == 1 {
				return nil, fmt.Errorf("trailing %q", '.')
			}
			rest = rest[1:]
			if rest[0] == '[' {
				return nil, fmt.Errorf("index segment after %q", '.')
			}
		case '[':
			seg, n, err := parseIndexSegment(rest)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			rest = rest[n:]
			first = false
			continue
		default:
			if !first {
				return nil, fmt.Errorf("expected %q or %q at %q", '.', '[', rest)
			}
		}
		seg, n, err := parseFieldSegment(rest)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		rest = rest[n:]
		first = false
	}
	return segs, nil
}

func parseIndexSegment(s string) (segment, int, error) {
	i := strings.IndexByte(s, ']')
	if i == -1 {
		return segment{}, 0, fmt.Errorf("unclosed %q", '[')
	}
	body := s[1:i]
	if body == "" {
		return segment{indexAll: true}, i + 1, nil
	}
	u, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return segment{}, 0, fmt.Errorf("invalid index %q: %v", body, err)
	}
	idx := int(u)
	return segment{index: &idx}, i + 1, nil
}

func parseFieldSegment(s string) (segment, int, error) {
	if s[0] == '\'' || s[0] == '"' {
		field, n, ok := ir.UnquoteField(s, s[0])
		if !ok {
			return segment{}, 0, fmt.Errorf("unterminated quoted key")
		}
		return segment{field: &field}, n, nil
	}
	i := strings.IndexAny(s, ".[")
	if i == -1 {
		i = len(s)
	}
	body := s[:i]
	if body == "" {
		return segment{}, 0, fmt.Errorf("empty key segment")
	}
	if body == "*" {
		return segment{fieldAll: true}, i, nil
	}
	if strings.Contains(body, "*") {
		return segment{}, 0, fmt.Errorf("key wildcard %q must be a whole segment", '*')
	}
	field := body
	return segment{field: &field}, i, nil
}
