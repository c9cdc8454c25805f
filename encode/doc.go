// Package encode renders an ordered ir.Node tree as block-structured YAML.
//
// The emitter preserves the tree exactly: object keys appear in the node's
// key order and array elements in slice order. Layout is configured with
// three knobs mirroring common block-style conventions: Indent (nested
// mapping indent, default 2), SequenceIndent (item content column relative
// to the parent, default 4) and SequenceOffset (dash column within the
// sequence indent, default 2):
//
//	spec:
//	  containers:
//	    - name: app
//	      image: nginx
//
// Empty containers render in flow style ({} and []). Strings are written as
// plain scalars unless that would be ambiguous, in which case they are
// double-quoted with escapes.
//
// Terminal colors can be enabled with EncodeColors for interactive viewing;
// colored output is not meant to be parsed.
package encode
