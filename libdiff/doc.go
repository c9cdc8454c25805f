// Package libdiff reports how two document trees differ in key order.
//
// It compares trees whose content is expected to be equal but whose mapping
// keys may appear in a different order, which is what an ordering transform
// produces. The result is a list of changes, one per mapping path whose key
// order moved, each naming the keys that were relocated.
//
//	changes := libdiff.KeyOrder(before, after)
//	for _, ch := range changes {
//		fmt.Println(ch)
//	}
package libdiff
