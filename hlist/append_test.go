package hlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hlist-support/hlist"
)

func TestAppend_LeftIdentity(t *testing.T) {
	l := hlist.L2(1, "a")

	assert.Equal(t, l, hlist.Append0(hlist.Nil{}, l))
}

func TestAppend_RightIdentity(t *testing.T) {
	l := hlist.L2(1, "a")

	assert.Equal(t, l, hlist.Append2(l, hlist.Nil{}))
}

func TestAppend_Associativity(t *testing.T) {
	a := hlist.L1("a")
	b := hlist.L2(1, 2.5)
	c := hlist.L1(true)

	left := hlist.Append3(hlist.Append1(a, b), c)
	right := hlist.Append1(a, hlist.Append2(b, c))

	assert.True(t, hlist.Equal(left, right))
}

func TestAppend_LengthAdditivityAndOrder(t *testing.T) {
	a := hlist.L3(uint8(1), "two", 3.5)
	b := hlist.L2(true, 6)

	got := hlist.Append3(a, b)

	assert.Equal(t, a.Len()+b.Len(), got.Len())
	assert.Equal(t,
		append(hlist.Elements(a), hlist.Elements(b)...),
		hlist.Elements(got))
}

func TestAppend_ConcreteOrder(t *testing.T) {
	got := hlist.Append2(hlist.L2(1, 2), hlist.L2(3, 4))

	assert.Equal(t, hlist.L4(1, 2, 3, 4), got)
}

func TestAppend_MixedShapes(t *testing.T) {
	got := hlist.Append1(hlist.L1(42), hlist.L1("hello"))

	assert.Equal(t, hlist.L2(42, "hello"), got)
	assert.Equal(t, "Cons(42, Cons(hello, Nil))", got.String())
}
