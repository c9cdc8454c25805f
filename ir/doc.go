// Package ir defines the ordered node tree that the rest of the module
// operates on.
//
// # Overview
//
// A Node represents a single value in a nested document. Nodes are a
// recursive tagged union over a closed Type enumeration:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array (ordered list)
//
// For ObjectType nodes, Keys[i] is the key for the value at Values[i], so
// there are always the same number of keys as values. The key order is fixed
// when the node is constructed and is never mutated afterwards; reordering a
// tree always produces new nodes.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "kind", Val: ir.FromString("Pod")},
//	    {Key: "apiVersion", Val: ir.FromString("v1")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromGo converts arbitrary Go values (maps, slices, scalars). Because Go
// maps have no iteration order, FromGo sorts their keys; use FromKeyVals or
// the decode package when the source order matters.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// # Navigation
//
// Nodes maintain parent links (Parent, ParentIndex, ParentField). KPath()
// renders a node's position as a textual path, e.g. "spec.containers[0].name",
// with the root rendering as "".
//
// # Thread Safety
//
// Node trees are not synchronized. They are safe for concurrent readers once
// fully constructed; mutation requires external synchronization.
package ir
