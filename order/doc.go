// Package order resolves the key order to apply at a structural path inside
// a nested document.
//
// Orders come from two independent, composable rule providers:
//
//   - pattern rules: dot/bracket path patterns with wildcards, e.g.
//     "spec.containers[].name" or "metadata.*", compiled once and tried in
//     declaration order;
//   - exact rules: literal paths derived by walking an example document and
//     recording its key order at every mapping node (lists contribute the
//     order of their first element, shared by all elements).
//
// A Resolver consults pattern rules first, then exact rules; when neither
// applies, the consumer keeps the node's natural key order.
//
// Pattern grammar: dot-separated steps. A step is a literal key (quoted with
// single or double quotes when it contains path metacharacters), the key
// wildcard "*" matching exactly one key, a literal index "[n]", or the list
// wildcard "[]" matching exactly one index. Index steps attach to the
// preceding segment without a dot, mirroring the path rendering "a.b[0].c".
//
// A pattern applies to a mapping whose path it matches in full, and also to
// the mapping containing the entry it names: "spec.containers[].name" orders
// every container, anchored at its "name" entry.
package order
