package gen

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hlist-support/internal/analyze"
)

func pairRecord() *analyze.Record {
	return &analyze.Record{
		ID:      analyze.TypeID{PkgPath: "example/pair", Name: "Pair"},
		PkgName: "pair",
		Dir:     "/tmp/pair",
		Fields: []analyze.Field{
			{Name: "A", Type: types.Typ[types.Uint8], Index: 0},
			{Name: "B", Type: types.Typ[types.String], Index: 1},
		},
	}
}

func TestGenerator_Generate_Pair(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	files, err := g.Generate([]*analyze.Record{pairRecord()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "pair_hlist.go", files[0].Filename)
	assert.Equal(t, "/tmp/pair", files[0].Dir)

	content := string(files[0].Content)
	assert.Contains(t, content, "// Code generated by hlist-gen. DO NOT EDIT.")
	assert.Contains(t, content, "package pair")
	assert.Contains(t, content, `"hlist-support/hlist"`)
	assert.Contains(t, content, "type PairHList = hlist.Cons[uint8, hlist.Cons[string, hlist.Nil]]")
	assert.Contains(t, content, "func (r *Pair) FromHList(l PairHList)")
	assert.Contains(t, content, "r.A = l.Head")
	assert.Contains(t, content, "r.B = l.Tail.Head")
	assert.Contains(t, content, "hlist.Prepend(hlist.Prepend(hlist.Nil{}, r.B), r.A)")
	assert.Contains(t, content, "func (r *Pair) ToHList() PairHList")
	assert.Contains(t, content, "func (r Pair) IntoHList() PairHList")
}

func TestGenerator_ReusedAcrossRecords(t *testing.T) {
	// One generator serves any number of records off the shared
	// parsed template, always producing the same bytes.
	g := NewGenerator(DefaultConfig())

	first, err := g.Generate([]*analyze.Record{pairRecord(), pairRecord()})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, first[0], first[1])

	second, err := g.Generate([]*analyze.Record{pairRecord()})
	require.NoError(t, err)
	assert.Equal(t, first[0].Content, second[0].Content)
}

func TestGenerator_CollectsFieldImports(t *testing.T) {
	clockPkg := types.NewPackage("example/clock", "clock")
	stamp := types.NewNamed(
		types.NewTypeName(token.NoPos, clockPkg, "Stamp", nil),
		types.Typ[types.Int64], nil)

	rec := &analyze.Record{
		ID:      analyze.TypeID{PkgPath: "example/log", Name: "Entry"},
		PkgName: "log",
		Dir:     "/tmp/log",
		Fields: []analyze.Field{
			{Name: "At", Type: stamp, Index: 0},
		},
	}

	files, err := NewGenerator(DefaultConfig()).Generate([]*analyze.Record{rec})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, `"example/clock"`)
	assert.Contains(t, content, "hlist.Cons[clock.Stamp, hlist.Nil]")
	assert.Contains(t, content, "r.At = l.Head")
}

func TestGenerator_SamePackageTypesStayUnqualified(t *testing.T) {
	ownPkg := types.NewPackage("example/pair", "pair")
	side := types.NewNamed(
		types.NewTypeName(token.NoPos, ownPkg, "Side", nil),
		types.Typ[types.Int], nil)

	rec := pairRecord()
	rec.Fields = append(rec.Fields, analyze.Field{Name: "S", Type: side, Index: 2})

	files, err := NewGenerator(DefaultConfig()).Generate([]*analyze.Record{rec})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "hlist.Cons[Side, hlist.Nil]")
	assert.NotContains(t, content, `"example/pair"`)
}

func TestGenerator_EmptyRecord(t *testing.T) {
	rec := &analyze.Record{
		ID:      analyze.TypeID{PkgPath: "example/unitpkg", Name: "Unit"},
		PkgName: "unitpkg",
		Dir:     "/tmp/unitpkg",
	}

	files, err := NewGenerator(DefaultConfig()).Generate([]*analyze.Record{rec})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "type UnitHList = hlist.Nil")
	assert.Contains(t, content, "return hlist.Nil{}")
}

func TestGenerator_CustomSuffix(t *testing.T) {
	g := NewGenerator(Config{Suffix: "_seq.go"})

	files, err := g.Generate([]*analyze.Record{pairRecord()})
	require.NoError(t, err)

	assert.Equal(t, "pair_seq.go", files[0].Filename)
}
