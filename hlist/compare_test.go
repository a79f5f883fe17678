package hlist_test

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hlist-support/hlist"
)

func TestCompare_Lexicographic(t *testing.T) {
	c, err := hlist.Compare(hlist.L2(1, "a"), hlist.L2(1, "b"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = hlist.Compare(hlist.L2(2, "a"), hlist.L2(1, "z"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = hlist.Compare(hlist.L2(1, "a"), hlist.L2(1, "a"))
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestCompare_HeadBeforeTail(t *testing.T) {
	// The head decides even when the tail would order the other way.
	c, err := hlist.Compare(hlist.L2(1, "z"), hlist.L2(2, "a"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompare_Bools(t *testing.T) {
	c, err := hlist.Compare(hlist.L1(false), hlist.L1(true))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompare_NestedLists(t *testing.T) {
	c, err := hlist.Compare(
		hlist.L2(1, hlist.L1("a")),
		hlist.L2(1, hlist.L1("b")))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompare_ShapeMismatch(t *testing.T) {
	_, err := hlist.Compare(hlist.L1(1), hlist.L2(1, 2))
	assert.ErrorIs(t, err, hlist.ErrShapeMismatch)

	_, err = hlist.Compare(hlist.L1(1), hlist.L1("1"))
	assert.ErrorIs(t, err, hlist.ErrShapeMismatch)
}

func TestCompare_NilElements(t *testing.T) {
	// Untyped nil elements are well-formed list contents: two nils
	// compare equal, a nil against a value is a shape mismatch.
	c, err := hlist.Compare(hlist.L1[any](nil), hlist.L1[any](nil))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = hlist.Compare(hlist.L1[any](nil), hlist.L1[any](1))
	assert.ErrorIs(t, err, hlist.ErrShapeMismatch)

	_, err = hlist.Compare(hlist.L1[any](1), hlist.L1[any](nil))
	assert.ErrorIs(t, err, hlist.ErrShapeMismatch)
}

func TestCompare_ListAgainstNonList(t *testing.T) {
	_, err := hlist.Compare(hlist.L1[any](hlist.L1(1)), hlist.L1[any](1))
	require.ErrorIs(t, err, hlist.ErrShapeMismatch)
	assert.ErrorContains(t, err, "vs int")
}

func TestCompare_UnorderedElement(t *testing.T) {
	type opaque struct{ x int }

	_, err := hlist.Compare(hlist.L1(opaque{1}), hlist.L1(opaque{2}))
	assert.ErrorIs(t, err, hlist.ErrUnorderedElement)
}

func TestHash_EqualListsHashEqual(t *testing.T) {
	seed := maphash.MakeSeed()

	a := hlist.L3(uint8(1), "two", true)
	b := hlist.L3(uint8(1), "two", true)

	assert.Equal(t, hlist.Hash(seed, a), hlist.Hash(seed, b))
	assert.Equal(t, hlist.Hash(seed, hlist.Nil{}), hlist.Hash(seed, hlist.Nil{}))
}
