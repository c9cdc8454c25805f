package ir

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// FromGo converts a raw Go value into a Node tree. Accepted inputs are
// mappings with string keys, slices and arrays, scalars (strings, booleans,
// integers, floats), nil, and pre-built *Node values (used as-is). Anything
// else fails with a *ConvertError naming the path of the offending value.
//
// Go maps carry no iteration order, so their keys become the node's natural
// order sorted lexicographically. Callers for whom natural order is
// significant should build nodes with FromKeyVals or parse bytes with the
// decode package instead.
func FromGo(v any) (*Node, error) {
	return fromGo(v, "")
}

func fromGo(v any, path string) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x), path)
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x, path)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]KeyVal, 0, len(keys))
		for _, k := range keys {
			val, err := fromGo(x[k], childPath(path, k))
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: val})
		}
		return FromKeyVals(kvs), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, el := range x {
			val, err := fromGo(el, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return FromSlice(vals), nil
	}
	return fromGoReflect(reflect.ValueOf(v), path)
}

// fromGoReflect covers map, slice and array kinds beyond the common concrete
// types, e.g. map[string]string or []int.
func fromGoReflect(val reflect.Value, path string) (*Node, error) {
	if !val.IsValid() {
		return Null(), nil
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return Null(), nil
		}
		return fromGoReflect(val.Elem(), path)
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, &ConvertError{
				Path:    path,
				Message: fmt.Sprintf("map key type %s is not a string", val.Type().Key()),
			}
		}
		keys := make([]string, 0, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		kvs := make([]KeyVal, 0, len(keys))
		for _, k := range keys {
			el := val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key()))
			sub, err := fromGo(el.Interface(), childPath(path, k))
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: sub})
		}
		return FromKeyVals(kvs), nil
	case reflect.Slice, reflect.Array:
		n := val.Len()
		vals := make([]*Node, n)
		for i := range n {
			sub, err := fromGo(val.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			vals[i] = sub
		}
		return FromSlice(vals), nil
	}
	return nil, &ConvertError{
		Path:    path,
		Message: fmt.Sprintf("unsupported value of type %T", val.Interface()),
	}
}

func fromUint(x uint64, path string) (*Node, error) {
	if x > math.MaxInt64 {
		return nil, &ConvertError{
			Path:    path,
			Message: fmt.Sprintf("unsigned value %d overflows int64", x),
		}
	}
	return FromInt(int64(x)), nil
}

func childPath(path, key string) string {
	if FieldNeedsQuote(key) {
		key = QuoteField(key)
	}
	if path == "" {
		return key
	}
	return path + "." + key
}
