package order

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sgriffith3/orderedYAML/ir"
)

func kvs(pairs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		var val *ir.Node
		switch v := pairs[i+1].(type) {
		case *ir.Node:
			val = v
		case string:
			val = ir.FromString(v)
		case int:
			val = ir.FromInt(int64(v))
		}
		res = append(res, ir.KeyVal{Key: pairs[i].(string), Val: val})
	}
	return ir.FromKeyVals(res)
}

func TestFromTemplate(t *testing.T) {
	template := kvs(
		"kind", "Deployment",
		"apiVersion", "apps/v1",
		"spec", kvs(
			"replicas", 2,
			"containers", ir.FromSlice([]*ir.Node{
				kvs("name", "c", "image", "img"),
				kvs("image", "other", "name", "d"),
			}),
		),
	)
	rules := FromTemplate(template)
	want := ExactRules{
		"":                   {"kind", "apiVersion", "spec"},
		"spec":               {"replicas", "containers"},
		"spec.containers[0]": {"name", "image"},
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("FromTemplate mismatch (-want +got):\n%s", diff)
	}
}

func TestExactRules_LookupNormalizesIndexes(t *testing.T) {
	template := kvs(
		"items", ir.FromSlice([]*ir.Node{
			kvs("b", 1, "a", 2),
		}),
	)
	rules := FromTemplate(template)
	for _, i := range []int{0, 1, 9} {
		keys, ok := rules.Lookup(Path{}.Field("items").Elem(i))
		if !ok {
			t.Fatalf("Lookup(items[%d]): no rule", i)
		}
		if diff := cmp.Diff([]string{"b", "a"}, keys); diff != "" {
			t.Errorf("Lookup(items[%d]) mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestFromTemplate_EmptyList(t *testing.T) {
	template := kvs("items", ir.FromSlice(nil))
	rules := FromTemplate(template)
	if _, ok := rules.Lookup(Path{}.Field("items").Elem(0)); ok {
		t.Error("empty list should contribute no element rule")
	}
	if _, ok := rules.Lookup(Path{}.Field("items")); ok {
		t.Error("a list node itself should contribute no rule")
	}
	keys, ok := rules.Lookup(Path{})
	if !ok || len(keys) != 1 || keys[0] != "items" {
		t.Errorf("root rule = %v, %v; want [items], true", keys, ok)
	}
}

func TestFromTemplate_Nil(t *testing.T) {
	rules := FromTemplate(nil)
	if len(rules) != 0 {
		t.Errorf("FromTemplate(nil) = %v, want empty", rules)
	}
}

func TestFromTemplate_ScalarRoot(t *testing.T) {
	rules := FromTemplate(ir.FromString("x"))
	if len(rules) != 0 {
		t.Errorf("scalar template should contribute no rules, got %v", rules)
	}
}
