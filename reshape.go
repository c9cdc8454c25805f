package orderedyaml

import (
	"github.com/sgriffith3/orderedYAML/debug"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/order"
)

// Reshape walks node recursively and returns a new tree mirroring it, with
// every object's keys emitted in the order the resolver chooses for the
// object's path. A resolved key list is a prefix override: listed keys
// present in the object come first, in list order, followed by the object's
// remaining keys in their natural order, so no key is ever dropped. Objects
// with no applicable rule, arrays and scalars keep their natural order.
//
// Reshape is pure: node is not modified and the result shares no structure
// with it. Reshaping is all-or-nothing; on error no partial tree is
// returned.
func Reshape(node *ir.Node, r *order.Resolver) (*ir.Node, error) {
	return reshape(node, r, order.Path{})
}

func reshape(node *ir.Node, r *order.Resolver, path order.Path) (*ir.Node, error) {
	if node == nil {
		return ir.Null(), nil
	}
	switch node.Type {
	case ir.ObjectType:
		return reshapeObject(node, r, path)
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, val := range node.Values {
			sub, err := reshape(val, r, path.Elem(i))
			if err != nil {
				return nil, err
			}
			vals[i] = sub
		}
		return ir.FromSlice(vals), nil
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		res := node.Clone()
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
		return res, nil
	default:
		return nil, &ir.TypeError{Path: path.String(), Type: node.Type}
	}
}

func reshapeObject(node *ir.Node, r *order.Resolver, path order.Path) (*ir.Node, error) {
	keys := node.Keys
	if resolved, ok := r.Resolve(path); ok {
		keys = orderKeys(node, resolved)
		if debug.Reshape() {
			debug.Logf("reshape %q: %v -> %v\n", path, node.Keys, keys)
		}
	}
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, key := range keys {
		val, err := reshape(ir.Get(node, key), r, path.Field(key))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

// orderKeys applies a resolved key list to the object's keys: the
// intersection first, in resolved order, then the rest in object order.
// Resolved keys absent from the object are skipped; every object key appears
// exactly once.
func orderKeys(node *ir.Node, resolved []string) []string {
	keys := make([]string, 0, len(node.Keys))
	taken := make(map[string]bool, len(resolved))
	for _, key := range resolved {
		if taken[key] {
			continue
		}
		if ir.Get(node, key) != nil {
			keys = append(keys, key)
			taken[key] = true
		}
	}
	for _, key := range node.Keys {
		if !taken[key] {
			keys = append(keys, key)
		}
	}
	return keys
}
