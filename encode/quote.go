package encode

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// needsQuote reports whether a plain YAML scalar rendering of v would be
// ambiguous: empty strings, strings that read back as another scalar type,
// leading indicator characters, structural "key: " or " #" sequences, and
// anything with surrounding whitespace or non-printable content.
func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null", "~",
		"True", "False", "Null",
		"yes", "no", "on", "off",
		"Yes", "No", "On", "Off":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	switch v[0] {
	case '!', '&', '*', '-', '?', '|', '>', '%', '@', '#', ',',
		'{', '}', '[', ']', '"', '\'', '`', ':':
		return true
	}
	if strings.Contains(v, ": ") || strings.HasSuffix(v, ":") {
		return true
	}
	if strings.Contains(v, " #") {
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	for _, r := range v {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// quote renders v as a double-quoted YAML scalar.
func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsControl(r) {
				b.WriteString(`\u`)
				const hex = "0123456789abcdef"
				b.WriteByte(hex[(r>>12)&0xf])
				b.WriteByte(hex[(r>>8)&0xf])
				b.WriteByte(hex[(r>>4)&0xf])
				b.WriteByte(hex[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
