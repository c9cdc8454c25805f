package order

import (
	"fmt"
	"maps"
	"slices"
)

// Rule associates a path pattern with the key order to use at matching paths.
type Rule struct {
	Pattern string
	Keys    []string
}

// Rules is an ordered rule list; resolution tries rules in slice order and
// the first matching rule wins.
type Rules []Rule

// RulesFromMap adapts a Go map of pattern strings to key lists. Map iteration
// order is not deterministic, so the rules are ordered by sorted pattern
// string; callers who need a specific precedence among overlapping patterns
// should construct Rules directly.
func RulesFromMap(m map[string][]string) Rules {
	res := make(Rules, 0, len(m))
	for _, pat := range slices.Sorted(maps.Keys(m)) {
		res = append(res, Rule{Pattern: pat, Keys: m[pat]})
	}
	return res
}

// ConfigError reports a malformed ordering pattern. It is returned from rule
// compilation, before any document data is processed.
type ConfigError struct {
	Pattern string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid ordering pattern %q: %v", e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
