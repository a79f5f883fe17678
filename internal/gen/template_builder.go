package gen

import (
	"fmt"
	"go/types"
	"strings"

	"hlist-support/internal/analyze"
)

const fileTemplate = `// Code generated by hlist-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// {{.TypeName}}HList is the field sequence of {{.TypeName}} as a heterogeneous list.
type {{.TypeName}}HList = {{.ListType}}

// FromHList assigns the elements of l to the fields of r in declaration order.
func (r *{{.TypeName}}) FromHList(l {{.TypeName}}HList) {
{{- range .Assignments}}
	{{.}}
{{- end}}
}

// ToHList copies the fields of r, in declaration order, into a new list.
func (r *{{.TypeName}}) ToHList() {{.TypeName}}HList {
	return {{.BuildExpr}}
}

// IntoHList consumes r, moving its fields into a new list.
func (r {{.TypeName}}) IntoHList() {{.TypeName}}HList {
	return {{.BuildExpr}}
}
`

// templateData holds all data needed for the conversion-file template.
type templateData struct {
	PackageName string
	TypeName    string
	Imports     []string
	ListType    string
	Assignments []string
	BuildExpr   string
}

// buildTemplateData constructs the template data for one record.
func (g *Generator) buildTemplateData(rec *analyze.Record) *templateData {
	imports := map[string]struct{}{hlistPkgPath: {}}

	// Types from the record's own package stay unqualified; every other
	// package the field types mention becomes an import.
	qual := func(p *types.Package) string {
		if p.Path() == rec.ID.PkgPath {
			return ""
		}

		imports[p.Path()] = struct{}{}

		return p.Name()
	}

	data := &templateData{
		PackageName: rec.PkgName,
		TypeName:    rec.ID.Name,
	}

	// The list type and the build expression both nest right to left,
	// terminal innermost, so the first field ends up at the head.
	listType := "hlist.Nil"
	buildExpr := "hlist.Nil{}"
	for i := len(rec.Fields) - 1; i >= 0; i-- {
		field := rec.Fields[i]
		listType = fmt.Sprintf("hlist.Cons[%s, %s]", types.TypeString(field.Type, qual), listType)
		buildExpr = fmt.Sprintf("hlist.Prepend(%s, r.%s)", buildExpr, field.Name)
	}
	data.ListType = listType
	data.BuildExpr = buildExpr

	for i, field := range rec.Fields {
		accessor := "l." + strings.Repeat("Tail.", i) + "Head"
		data.Assignments = append(data.Assignments, fmt.Sprintf("r.%s = %s", field.Name, accessor))
	}

	data.Imports = sortedImports(imports)

	return data
}
