package hlist

// The three conversion capabilities are deliberately independent: a
// record whose fields cannot all be copied may still support the moving
// direction, and vice versa. Generated implementations (see hlist-gen)
// keep the list's element sequence equal to the record's field sequence
// in declaration order, which is what makes the round-trip laws hold.

// To is implemented by records that can copy their fields, in
// declaration order, into a new list. The receiver is left untouched.
type To[L List] interface {
	ToHList() L
}

// Into is implemented by records that can be consumed into a list,
// moving each field into its position.
type Into[L List] interface {
	IntoHList() L
}

// From is implemented by record pointers that can be filled positionally
// from a list. Generated code assigns element i to field i.
type From[L List] interface {
	FromHList(L)
}

// FromList builds a record of type R from the list l:
//
//	inner := hlist.FromList[Inner](hlist.L2(uint8(1), uint8(2)))
//
// The record type parameter is given explicitly; the list type and the
// pointer type are inferred.
func FromList[R any, L List, PR interface {
	*R
	From[L]
}](l L) R {
	var r R
	PR(&r).FromHList(l)
	return r
}
