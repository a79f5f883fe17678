package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

var (
	// ErrTypeNotFound reports a lookup for a type no loaded package defines.
	ErrTypeNotFound = errors.New("type not found in loaded packages")

	// ErrNotAStruct reports a lookup for a named type that is not a
	// plain (non-generic) struct and so has no derivable field sequence.
	ErrNotAStruct = errors.New("type is not a plain struct")
)

// Analyzer loads Go packages and collects their record descriptions.
type Analyzer struct {
	records    map[TypeID]*Record
	nonStructs map[TypeID]struct{}
	packages   map[string]*PackageInfo
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		records:    make(map[TypeID]*Record),
		nonStructs: make(map[TypeID]struct{}),
		packages:   make(map[string]*PackageInfo),
	}
}

// LoadPackages loads the given package patterns (e.g., "./examples/records",
// "hlist-support/examples/catalog") and returns the packages they matched.
// Results accumulate across calls.
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	infos := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		infos = append(infos, a.processPackage(pkg))
	}

	return infos, nil
}

// processPackage extracts the struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		rec := a.analyzeRecord(typeName, id, info)
		if rec == nil {
			a.nonStructs[id] = struct{}{}
			continue
		}

		a.records[id] = rec
		info.Records = append(info.Records, id)
	}

	a.packages[pkg.PkgPath] = info

	return info
}

// analyzeRecord returns a Record for a plain struct type, or nil when
// the type has no derivable field sequence.
func (a *Analyzer) analyzeRecord(typeName *types.TypeName, id TypeID, info *PackageInfo) *Record {
	named, ok := typeName.Type().(*types.Named)
	if !ok {
		return nil
	}

	// Generic structs would need per-instantiation methods; skip them.
	if named.TypeParams().Len() > 0 {
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	rec := &Record{
		ID:      id,
		PkgName: info.Name,
		Dir:     info.Dir,
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		rec.Fields = append(rec.Fields, Field{
			Name:  field.Name(),
			Type:  field.Type(),
			Index: i,
		})
	}

	return rec
}

// Record returns the record description for a named struct, looked up by
// its package path and type name.
func (a *Analyzer) Record(pkgPath, name string) (*Record, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}

	if rec, ok := a.records[id]; ok {
		return rec, nil
	}

	if _, ok := a.nonStructs[id]; ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotAStruct)
	}

	return nil, fmt.Errorf("%s: %w", id, ErrTypeNotFound)
}

// Package returns info about a loaded package, or nil if not loaded.
func (a *Analyzer) Package(pkgPath string) *PackageInfo {
	return a.packages[pkgPath]
}
