package hlist

// Append0 through Append8 concatenate a left list of known length onto
// any right list. The family is indexed by the LEFT operand's length:
// AppendN takes an N-element list and returns its N-element prefix over
// rhs, moving each left element exactly once. The right operand passes
// through untouched, so the cost is linear in the left length only.
//
// Each step rebuilds one cons layer around the next smaller append, the
// same structural recursion that defines the lists themselves; Append0
// is the base case returning rhs unchanged.

func Append0[R List](_ Nil, rhs R) R {
	return rhs
}

func Append1[A any, R List](lhs Cons[A, Nil], rhs R) Cons[A, R] {
	return Prepend(Append0(lhs.Tail, rhs), lhs.Head)
}

func Append2[A, B any, R List](lhs Cons[A, Cons[B, Nil]], rhs R) Cons[A, Cons[B, R]] {
	return Prepend(Append1(lhs.Tail, rhs), lhs.Head)
}

func Append3[A, B, C any, R List](lhs Cons[A, Cons[B, Cons[C, Nil]]], rhs R) Cons[A, Cons[B, Cons[C, R]]] {
	return Prepend(Append2(lhs.Tail, rhs), lhs.Head)
}

func Append4[A, B, C, D any, R List](lhs Cons[A, Cons[B, Cons[C, Cons[D, Nil]]]], rhs R) Cons[A, Cons[B, Cons[C, Cons[D, R]]]] {
	return Prepend(Append3(lhs.Tail, rhs), lhs.Head)
}

func Append5[A, B, C, D, E any, R List](lhs Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Nil]]]]], rhs R) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, R]]]]] {
	return Prepend(Append4(lhs.Tail, rhs), lhs.Head)
}

func Append6[A, B, C, D, E, F any, R List](lhs Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Nil]]]]]], rhs R) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, R]]]]]] {
	return Prepend(Append5(lhs.Tail, rhs), lhs.Head)
}

func Append7[A, B, C, D, E, F, G any, R List](lhs Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, Nil]]]]]]], rhs R) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, R]]]]]]] {
	return Prepend(Append6(lhs.Tail, rhs), lhs.Head)
}

func Append8[A, B, C, D, E, F, G, H any, R List](lhs Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, Cons[H, Nil]]]]]]]], rhs R) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, Cons[H, R]]]]]]]] {
	return Prepend(Append7(lhs.Tail, rhs), lhs.Head)
}
