package order

import (
	"errors"
	"testing"
)

func TestCompilePatterns_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty pattern", pattern: ""},
		{name: "leading dot", pattern: ".a"},
		{name: "trailing dot", pattern: "a."},
		{name: "empty segment", pattern: "a..b"},
		{name: "dot before index", pattern: "a.[0]"},
		{name: "unclosed bracket", pattern: "a[0.b"},
		{name: "non-integer index", pattern: "a[x]"},
		{name: "negative index", pattern: "a[-1]"},
		{name: "embedded wildcard", pattern: "a*b"},
		{name: "unterminated quote", pattern: "'a.b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := Rules{{Pattern: tt.pattern, Keys: []string{"k"}}}
			_, err := CompilePatterns(rules)
			if err == nil {
				t.Fatalf("CompilePatterns(%q): no error", tt.pattern)
			}
			cfgErr := &ConfigError{}
			if !errors.As(err, &cfgErr) {
				t.Fatalf("CompilePatterns(%q): error %v is not a *ConfigError", tt.pattern, err)
			}
			if cfgErr.Pattern != tt.pattern {
				t.Errorf("ConfigError.Pattern = %q, want %q", cfgErr.Pattern, tt.pattern)
			}
		})
	}
}

func mustCompile(t *testing.T, pattern string) *Pattern {
	t.Helper()
	ps, err := CompilePatterns(Rules{{Pattern: pattern, Keys: []string{"k"}}})
	if err != nil {
		t.Fatalf("CompilePatterns(%q): %v", pattern, err)
	}
	return ps[0]
}

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    Path
		want    bool
	}{
		{
			name:    "literal match",
			pattern: "a.b",
			path:    Path{}.Field("a").Field("b"),
			want:    true,
		},
		{
			name:    "literal mismatch",
			pattern: "a.b",
			path:    Path{}.Field("a").Field("c"),
			want:    false,
		},
		{
			name:    "no prefix match",
			pattern: "a",
			path:    Path{}.Field("a").Field("b"),
			want:    false,
		},
		{
			name:    "key wildcard first branch",
			pattern: "a.*.c",
			path:    Path{}.Field("a").Field("x").Field("c"),
			want:    true,
		},
		{
			name:    "key wildcard second branch",
			pattern: "a.*.c",
			path:    Path{}.Field("a").Field("y").Field("c"),
			want:    true,
		},
		{
			name:    "key wildcard spans one key only",
			pattern: "a.*.c",
			path:    Path{}.Field("a").Field("x").Field("y").Field("c"),
			want:    false,
		},
		{
			name:    "key wildcard rejects index",
			pattern: "a.*",
			path:    Path{}.Field("a").Elem(0),
			want:    false,
		},
		{
			name:    "index wildcard element zero",
			pattern: "a[].b",
			path:    Path{}.Field("a").Elem(0).Field("b"),
			want:    true,
		},
		{
			name:    "index wildcard later element",
			pattern: "a[].b",
			path:    Path{}.Field("a").Elem(7).Field("b"),
			want:    true,
		},
		{
			name:    "index wildcard rejects key",
			pattern: "a[].b",
			path:    Path{}.Field("a").Field("x").Field("b"),
			want:    false,
		},
		{
			name:    "literal index",
			pattern: "a[1].b",
			path:    Path{}.Field("a").Elem(1).Field("b"),
			want:    true,
		},
		{
			name:    "literal index mismatch",
			pattern: "a[1].b",
			path:    Path{}.Field("a").Elem(2).Field("b"),
			want:    false,
		},
		{
			name:    "quoted key with dot",
			pattern: "'a.b'.c",
			path:    Path{}.Field("a.b").Field("c"),
			want:    true,
		},
		{
			name:    "root never matches",
			pattern: "a",
			path:    Path{},
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, tt.pattern)
			if got := p.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestPattern_MatchEntry(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    Path
		want    bool
	}{
		{
			name:    "entry of a list element",
			pattern: "spec.containers[].name",
			path:    Path{}.Field("spec").Field("containers").Elem(0),
			want:    true,
		},
		{
			name:    "entry of a nested mapping",
			pattern: "metadata.labels.app",
			path:    Path{}.Field("metadata").Field("labels"),
			want:    true,
		},
		{
			name:    "trailing index is not an entry",
			pattern: "a.b[0]",
			path:    Path{}.Field("a").Field("b"),
			want:    false,
		},
		{
			name:    "trailing wildcard is not an entry",
			pattern: "a.*",
			path:    Path{}.Field("a"),
			want:    false,
		},
		{
			name:    "prefix must match in full",
			pattern: "spec.containers[].name",
			path:    Path{}.Field("spec").Field("volumes").Elem(0),
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, tt.pattern)
			if got := p.MatchEntry(tt.path); got != tt.want {
				t.Errorf("MatchEntry(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestCompilePatterns_Order(t *testing.T) {
	rules := Rules{
		{Pattern: "a.*", Keys: []string{"x"}},
		{Pattern: "a.b", Keys: []string{"y"}},
	}
	ps, err := CompilePatterns(rules)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d patterns, want 2", len(ps))
	}
	if ps[0].Source() != "a.*" || ps[1].Source() != "a.b" {
		t.Errorf("declaration order not preserved: %q, %q", ps[0].Source(), ps[1].Source())
	}
}
