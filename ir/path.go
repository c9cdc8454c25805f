package ir

import (
	"strconv"
	"strings"
	"unicode"
)

// KPath returns the textual rendering of this node's position in the tree:
// literal keys dot-joined, array indices as a bracketed suffix, the root as
// the empty string.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Mixed "a[0].b" → "a[0].b"
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		f := node.ParentField
		prefix := node.Parent.KPath()
		var quoted string
		if FieldNeedsQuote(f) {
			quoted = QuoteField(f)
		} else {
			quoted = f
		}
		if prefix == "" {
			return quoted
		}
		return prefix + "." + quoted

	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"

	default:
		panic("parent but not in container")
	}
}

// FieldNeedsQuote reports whether a key must be quoted inside a path
// rendering, which is the case when it contains path metacharacters, quotes,
// whitespace or control characters, or when it is empty.
func FieldNeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, ".[]*'\"\\") {
		return true
	}
	for _, r := range v {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// QuoteField renders a key as a single-quoted path segment, escaping quotes
// and backslashes.
func QuoteField(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('\'')
	for _, r := range v {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// UnquoteField reverses QuoteField for a segment starting at the given quote
// character. It returns the key and the number of input bytes consumed
// (including both quotes), or ok=false when the quote is unterminated.
func UnquoteField(s string, quote byte) (field string, n int, ok bool) {
	var b strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return b.String(), i + 1, true
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}
