package orderedyaml

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sgriffith3/orderedYAML/encode"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/order"
)

func TestNew_PatternRules(t *testing.T) {
	data := map[string]any{
		"spec": map[string]any{
			"containers": []any{
				map[string]any{"image": "x", "name": "c1", "env": []any{}},
			},
		},
	}
	doc, err := New(data, WithRuleMap(map[string][]string{
		"spec.containers[].name": {"name", "image", "ports"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	got, err := doc.String()
	if err != nil {
		t.Fatal(err)
	}
	want := `spec:
  containers:
    - name: c1
      image: x
      env: []
`
	if got != want {
		t.Errorf("rendered document:\n%s\nwant:\n%s", got, want)
	}
}

func TestNew_TemplateOrder(t *testing.T) {
	template := ir.FromKeyVals([]ir.KeyVal{
		{Key: "kind", Val: ir.FromString("Pod")},
		{Key: "apiVersion", Val: ir.FromString("v1")},
	})
	data := map[string]any{
		"apiVersion": "v1",
		"extra":      true,
		"kind":       "Pod",
	}
	doc, err := New(data, WithTemplateNode(template))
	if err != nil {
		t.Fatal(err)
	}
	got, err := doc.String()
	if err != nil {
		t.Fatal(err)
	}
	want := `kind: Pod
apiVersion: v1
extra: true
`
	if got != want {
		t.Errorf("rendered document:\n%s\nwant:\n%s", got, want)
	}
}

func TestNew_RulePrecedence(t *testing.T) {
	template := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromInt(2)},
	})
	doc, err := New(
		map[string]any{"a": 1, "b": 2},
		WithTemplateNode(template),
		WithRules(order.Rules{{Pattern: "*", Keys: []string{"a", "b"}}}),
	)
	if err != nil {
		t.Fatal(err)
	}
	// "*" does not match the root path, so the template drives the root and
	// the pattern would only apply one level down.
	got := doc.Node().Keys
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("root keys = %v, want [b a]", got)
	}
}

func TestNew_BadPattern(t *testing.T) {
	_, err := New(map[string]any{"a": 1}, WithRuleMap(map[string][]string{
		"a..b": {"k"},
	}))
	if err == nil {
		t.Fatal("no error for malformed pattern")
	}
	cfgErr := &order.ConfigError{}
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error %v is not a *order.ConfigError", err)
	}
}

func TestNew_BadData(t *testing.T) {
	_, err := New(map[string]any{"a": make(chan int)})
	if err == nil {
		t.Fatal("no error for unconvertible data")
	}
	convErr := &ir.ConvertError{}
	if !errors.As(err, &convErr) {
		t.Fatalf("error %v is not a *ir.ConvertError", err)
	}
}

func TestDocument_StringMatchesEncode(t *testing.T) {
	doc, err := New(
		map[string]any{"b": []any{1, 2}, "a": map[string]any{"x": "y"}},
		WithIndent(2, 4, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	s, err := doc.String()
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := doc.Encode(buf); err != nil {
		t.Fatal(err)
	}
	if s != buf.String() {
		t.Errorf("String() = %q, Encode wrote %q", s, buf.String())
	}
}

func TestNew_IndentOptions(t *testing.T) {
	doc, err := New(
		map[string]any{"l": []any{map[string]any{"a": 1, "b": 2}}},
		WithIndent(2, 6, 3),
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err := doc.String()
	if err != nil {
		t.Fatal(err)
	}
	want := `l:
   -  a: 1
      b: 2
`
	if got != want {
		t.Errorf("rendered document:\n%s\nwant:\n%s", got, want)
	}
}

func TestNew_EncodeOptionsPassThrough(t *testing.T) {
	doc, err := New(map[string]any{"a": 1}, WithEncodeOptions(encode.Indent(0)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.String(); !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("String() error = %v, want %v", err, encode.ErrEncoding)
	}
}

func TestNew_NodePassThrough(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromInt(2)},
	})
	doc, err := New(node)
	if err != nil {
		t.Fatal(err)
	}
	keys := doc.Node().Keys
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("node input should keep its own order, got %v", keys)
	}
}
