// Package hlist implements heterogeneous lists: singly-linked sequences
// whose per-position element types are fixed in the list's own type.
//
// A list is either the terminal marker Nil or a Cons cell pairing a head
// value with a tail list, so the full element-type sequence is spelled out
// by the type itself:
//
//	hlist.Cons[uint8, hlist.Cons[string, hlist.Nil]]
//
// Lists are plain values with no runtime tag; a Cons nest has the same
// layout as the equivalent nested struct. Construction helpers L0..L8
// build a list from up to eight values, and Append0..Append8 concatenate
// a list of known length onto any other list. Both families are indexed
// by arity because Go has no type-level functions to compute the combined
// shape for an arbitrary left operand; longer lists compose by chaining.
//
// Records convert to and from their field-sequence list through the From,
// To and Into capabilities, normally implemented by code generated with
// the hlist-gen tool (see cmd/hlist-gen).
package hlist
