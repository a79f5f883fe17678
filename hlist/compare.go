package hlist

import (
	"cmp"
	"errors"
	"fmt"
	"hash/maphash"
	"reflect"
)

var (
	// ErrShapeMismatch reports an ordered comparison between lists whose
	// element-type sequences differ.
	ErrShapeMismatch = errors.New("lists have different shapes")

	// ErrUnorderedElement reports an element type with no defined order.
	ErrUnorderedElement = errors.New("element type has no defined order")
)

// Equal reports whether two lists of the same shape are structurally
// equal. It is plain ==, gated on the shape being comparable; lists of
// different shapes are different types and never reach this function.
func Equal[L interface {
	comparable
	List
}](a, b L) bool {
	return a == b
}

// Hash returns a seed-dependent hash of the list, combining the hashes
// of all elements. Equal lists hash equal under the same seed.
func Hash[L interface {
	comparable
	List
}](seed maphash.Seed, l L) uint64 {
	return maphash.Comparable(seed, l)
}

// Compare orders two lists lexicographically: heads first, ties broken
// on the tail. Unlike the rest of the package the check is performed at
// runtime, because Go cannot derive ordering per element type the way it
// admits == for comparable shapes. Both lists must have the same shape
// (ErrShapeMismatch otherwise) and every compared element must be an
// ordered kind or a nested list (ErrUnorderedElement otherwise). Two
// untyped nil elements compare equal; a nil against anything else is a
// shape mismatch.
func Compare(a, b List) (int, error) {
	ea, eb := Elements(a), Elements(b)
	if len(ea) != len(eb) {
		return 0, fmt.Errorf("%w: %d vs %d elements", ErrShapeMismatch, len(ea), len(eb))
	}

	for i := range ea {
		c, err := compareElem(ea[i], eb[i])
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}

		if c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

func compareElem(x, y any) (int, error) {
	if lx, ok := x.(List); ok {
		ly, ok := y.(List)
		if !ok {
			return 0, fmt.Errorf("%w: %T vs %T", ErrShapeMismatch, x, y)
		}

		return Compare(lx, ly)
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if !vx.IsValid() || !vy.IsValid() {
		// Untyped nil elements carry no reflect.Type. Two nils compare
		// equal; a nil against anything else is a shape mismatch.
		if !vx.IsValid() && !vy.IsValid() {
			return 0, nil
		}

		return 0, fmt.Errorf("%w: %T vs %T", ErrShapeMismatch, x, y)
	}

	if vx.Type() != vy.Type() {
		return 0, fmt.Errorf("%w: %T vs %T", ErrShapeMismatch, x, y)
	}

	switch vx.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(vx.Int(), vy.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(vx.Uint(), vy.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return cmp.Compare(vx.Float(), vy.Float()), nil

	case reflect.String:
		return cmp.Compare(vx.String(), vy.String()), nil

	case reflect.Bool:
		// false sorts before true.
		switch bx, by := vx.Bool(), vy.Bool(); {
		case bx == by:
			return 0, nil
		case by:
			return -1, nil
		default:
			return 1, nil
		}

	default:
		return 0, fmt.Errorf("%w: %T", ErrUnorderedElement, x)
	}
}
