package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromKeyVals(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromInt(1)},
		{Key: "a", Val: FromString("x")},
		{Key: "n", Val: nil},
	})
	if node.Type != ObjectType {
		t.Fatalf("type = %v, want object", node.Type)
	}
	if diff := cmp.Diff([]string{"b", "a", "n"}, node.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if node.Values[2].Type != NullType {
		t.Errorf("nil value should become null, got %v", node.Values[2].Type)
	}
	for i, val := range node.Values {
		if val.Parent != node {
			t.Errorf("value %d has wrong parent", i)
		}
		if val.ParentIndex != i {
			t.Errorf("value %d has ParentIndex %d", i, val.ParentIndex)
		}
		if val.ParentField != node.Keys[i] {
			t.Errorf("value %d has ParentField %q, want %q", i, val.ParentField, node.Keys[i])
		}
	}
}

func TestFromMap_SortsKeys(t *testing.T) {
	node := FromMap(map[string]*Node{
		"c": FromInt(1),
		"a": FromInt(2),
		"b": FromInt(3),
	})
	if diff := cmp.Diff([]string{"a", "b", "c"}, node.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromString("x")},
	})
	if got := Get(node, "b"); got == nil || got.String != "x" {
		t.Errorf("Get(b) = %v", got)
	}
	if got := Get(node, "missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if got := Get(FromInt(1), "a"); got != nil {
		t.Errorf("Get on a scalar = %v, want nil", got)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		{Key: "b", Val: FromFloat(2.5)},
	})
	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatal("clone differs from the original")
	}
	clone.Keys[0] = "mutated"
	Get(clone, "b").Float64 = nil
	if orig.Keys[0] != "a" {
		t.Error("clone shares key storage with the original")
	}
	if Get(orig, "b").Float64 == nil {
		t.Error("clone shares scalar storage with the original")
	}
}

func TestToMap(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
	})
	m := ToMap(node)
	if len(m) != 2 || m["a"] == nil || m["b"] == nil {
		t.Errorf("ToMap = %v", m)
	}
	if ToMap(FromString("x")) != nil {
		t.Error("ToMap on a scalar should be nil")
	}
}

func TestVisit(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
		{Key: "b", Val: FromInt(2)},
	})
	var pre, post int
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a, a[0], b
	if pre != 4 || post != 4 {
		t.Errorf("pre = %d, post = %d, want 4 and 4", pre, post)
	}
}

func TestRoot(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
	})
	leaf := Get(node, "a").Values[0]
	if leaf.Root() != node {
		t.Error("Root() did not climb to the tree root")
	}
}
