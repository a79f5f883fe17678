package hlist

// L0 through L8 build a list literal from the given values, left to
// right: L3(a, b, c) is Prepend(Prepend(Prepend(Nil{}, c), b), a), so a
// ends up at the head. L0 is the empty list.

func L0() Nil { return Nil{} }

func L1[A any](a A) Cons[A, Nil] {
	return Prepend(L0(), a)
}

func L2[A, B any](a A, b B) Cons[A, Cons[B, Nil]] {
	return Prepend(L1(b), a)
}

func L3[A, B, C any](a A, b B, c C) Cons[A, Cons[B, Cons[C, Nil]]] {
	return Prepend(L2(b, c), a)
}

func L4[A, B, C, D any](a A, b B, c C, d D) Cons[A, Cons[B, Cons[C, Cons[D, Nil]]]] {
	return Prepend(L3(b, c, d), a)
}

func L5[A, B, C, D, E any](a A, b B, c C, d D, e E) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Nil]]]]] {
	return Prepend(L4(b, c, d, e), a)
}

func L6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Nil]]]]]] {
	return Prepend(L5(b, c, d, e, f), a)
}

func L7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, Nil]]]]]]] {
	return Prepend(L6(b, c, d, e, f, g), a)
}

func L8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) Cons[A, Cons[B, Cons[C, Cons[D, Cons[E, Cons[F, Cons[G, Cons[H, Nil]]]]]]]] {
	return Prepend(L7(b, c, d, e, f, g, h), a)
}
