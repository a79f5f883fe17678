package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"slices"
	"text/template"

	"hlist-support/internal/analyze"
	"hlist-support/internal/common"
)

// hlistPkgPath is the import path of the core list package every
// generated file depends on.
const hlistPkgPath = "hlist-support/hlist"

var fileTmpl = template.Must(template.New("hlist").Parse(fileTemplate))

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the snake-cased type name to form the
	// generated file name.
	Suffix string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_hlist.go",
	}
}

// Generator generates hlist conversion code for records.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the record's package directory, where the file belongs.
	Dir string
	// Filename is the name of the file (e.g., "inner_hlist.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one conversion file per record.
func (g *Generator) Generate(recs []*analyze.Record) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(recs))

	for _, rec := range recs {
		file, err := g.generateRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", rec.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateRecord(rec *analyze.Record) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, g.buildTemplateData(rec)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{
		Dir:      rec.Dir,
		Filename: common.SnakeCase(rec.ID.Name) + g.config.Suffix,
		Content:  formatted,
	}, nil
}

func sortedImports(imports map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(imports))
}
