package analyze

import "go/types"

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "hlist-support/examples/records"
	Name    string // e.g., "Inner"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Field describes one struct field. Index is the field's position in
// the declaration; the list position of the corresponding element.
type Field struct {
	Name  string
	Type  types.Type
	Index int
}

// Record describes a struct type eligible for hlist derivation.
// Fields appear in declaration order and include unexported ones:
// generated code lives in the record's own package.
type Record struct {
	ID      TypeID
	PkgName string  // package clause for generated files
	Dir     string  // directory holding the package's sources
	Fields  []Field // declaration order
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // import path
	Name    string   // package name
	Dir     string   // source directory
	Records []TypeID // struct types found in this package
}
