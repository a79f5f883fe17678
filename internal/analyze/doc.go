// Package analyze loads Go packages and extracts record descriptions:
// the named struct types whose field sequences, in declaration order,
// become heterogeneous-list shapes.
//
// Loading uses golang.org/x/tools/go/packages so field types come from
// the real type checker, including types imported from other modules.
package analyze
