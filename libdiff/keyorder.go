package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sgriffith3/orderedYAML/ir"
)

// Change records the key reordering of one mapping node. From and To are the
// full key sequences before and after; Moved names the keys the diff had to
// relocate to get from one to the other.
type Change struct {
	Path  string
	From  []string
	To    []string
	Moved []string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: [%s] -> [%s] (moved %s)",
		displayPath(c.Path),
		strings.Join(c.From, " "),
		strings.Join(c.To, " "),
		strings.Join(c.Moved, " "))
}

func displayPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}

// KeyOrder walks from and to in parallel and collects a Change for every
// mapping whose key order differs. Both trees must hold the same content in
// possibly different orders; keys present on only one side are ignored, and
// values are paired by key, not by position.
func KeyOrder(from, to *ir.Node) []Change {
	var changes []Change
	keyOrder(from, to, "", &changes)
	return changes
}

func keyOrder(from, to *ir.Node, path string, changes *[]Change) {
	if from == nil || to == nil || from.Type != to.Type {
		return
	}
	switch from.Type {
	case ir.ObjectType:
		if moved := movedKeys(from.Keys, to.Keys); len(moved) > 0 {
			*changes = append(*changes, Change{
				Path:  path,
				From:  from.Keys,
				To:    to.Keys,
				Moved: moved,
			})
		}
		for i, key := range from.Keys {
			other := ir.Get(to, key)
			if other == nil {
				continue
			}
			keyOrder(from.Values[i], other, childPath(path, key), changes)
		}
	case ir.ArrayType:
		n := min(len(from.Values), len(to.Values))
		for i := range n {
			keyOrder(from.Values[i], to.Values[i],
				fmt.Sprintf("%s[%d]", path, i), changes)
		}
	}
}

// movedKeys diffs the two key sequences and returns the keys that appear on
// both sides but not in the same relative order. Keys are mapped to runes so
// the character differ can align the sequences.
func movedKeys(from, to []string) []string {
	keyRunes := map[string]rune{}
	runeKeys := map[rune]string{}
	fromRunes := mapKeysTo(keyRunes, runeKeys, from)
	toRunes := mapKeysTo(keyRunes, runeKeys, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	deleted := map[string]bool{}
	inserted := map[string]bool{}
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				deleted[runeKeys[r]] = true
			case diffpatch.DiffInsert:
				inserted[runeKeys[r]] = true
			}
		}
	}
	var moved []string
	for _, key := range to {
		if deleted[key] && inserted[key] {
			moved = append(moved, key)
		}
	}
	return moved
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, key := range keys {
		r, ok := m[key]
		if !ok {
			r = rune(len(m))
			m[key] = r
			im[r] = key
		}
		rs[i] = r
	}
	return rs
}

func childPath(path, key string) string {
	if ir.FieldNeedsQuote(key) {
		key = ir.QuoteField(key)
	}
	if path == "" {
		return key
	}
	return path + "." + key
}
