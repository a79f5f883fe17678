package hlist

import "fmt"

// List is the capability satisfied by exactly two shapes: the terminal
// marker Nil, and any Cons cell whose tail also satisfies it. It is meant
// to be used as a generic constraint; the only implementations live in
// this package.
type List interface {
	isList()

	// Len returns the number of elements in the list.
	Len() int

	// appendElems appends the list's elements, head first, to dst.
	appendElems(dst []any) []any
}

// Nil is the terminal marker: the empty heterogeneous list.
// All Nil values are equal, hash alike and occupy no storage.
type Nil struct{}

func (Nil) isList() {}

// Len returns 0.
func (Nil) Len() int { return 0 }

func (Nil) appendElems(dst []any) []any { return dst }

// String returns "Nil".
func (Nil) String() string { return "Nil" }

// Cons pairs a head element of type H with a tail list of type T,
// forming a list one element longer than the tail. Equality is Go's
// structural ==, available whenever every element type is comparable.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

func (Cons[H, T]) isList() {}

// Len returns one more than the tail's length.
func (c Cons[H, T]) Len() int { return 1 + c.Tail.Len() }

func (c Cons[H, T]) appendElems(dst []any) []any {
	return c.Tail.appendElems(append(dst, c.Head))
}

// String renders the list structurally, e.g. "Cons(1, Cons(two, Nil))".
func (c Cons[H, T]) String() string {
	return fmt.Sprintf("Cons(%v, %v)", c.Head, c.Tail)
}

// Prepend returns a new Cons with head in front of tail. It is the
// value-level cons constructor; Go methods cannot introduce type
// parameters, so the convenience lives here rather than on List.
func Prepend[H any, T List](tail T, head H) Cons[H, T] {
	return Cons[H, T]{Head: head, Tail: tail}
}

// Elements returns the list's elements in order, boxed as any.
// It exists for diagnostics and tests; typed access goes through
// Head and Tail.
func Elements(l List) []any {
	return l.appendElems(nil)
}
