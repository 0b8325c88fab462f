// Package responsive resolves per-breakpoint property values against a
// current viewport width.
//
// A Value holds either one scalar for every width class or a sparse
// per-class map resolved mobile-first: the current class wins, otherwise
// the nearest narrower class, otherwise the narrowest class that defines
// a value at all. A Resolver tracks the current width and caches resolved
// values per property until the width class changes or the property is
// rewritten.
package responsive

import "github.com/polykit/polykit/breakpoint"

type kind uint8

const (
	kindUnset kind = iota
	kindScalar
	kindMap
)

// Value holds a property that is either a single scalar or a set of
// per-breakpoint scalars. The zero Value is unset and resolves to the
// caller's default.
type Value[T any] struct {
	kind   kind
	scalar T
	perBP  map[breakpoint.Breakpoint]T
}

// Fixed returns a Value that resolves to v at every width class.
func Fixed[T any](v T) Value[T] {
	return Value[T]{kind: kindScalar, scalar: v}
}

// Map returns a Value backed by per-breakpoint entries. The map is
// copied; later mutation of m does not affect the Value. An empty or nil
// map yields an unset Value.
func Map[T any](m map[breakpoint.Breakpoint]T) Value[T] {
	if len(m) == 0 {
		return Value[T]{}
	}
	cp := make(map[breakpoint.Breakpoint]T, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value[T]{kind: kindMap, perBP: cp}
}

// IsSet reports whether the Value carries any entry at all.
func (v Value[T]) IsSet() bool {
	return v.kind != kindUnset
}

// At resolves the Value at the given width class, falling back to def
// when no entry applies.
func (v Value[T]) At(bp breakpoint.Breakpoint, def T) T {
	if out, ok := v.at(bp); ok {
		return out
	}
	return def
}

// at resolves mobile-first and reports whether any entry applied.
func (v Value[T]) at(bp breakpoint.Breakpoint) (T, bool) {
	switch v.kind {
	case kindScalar:
		return v.scalar, true
	case kindMap:
		for _, probe := range breakpoint.Cascade(bp) {
			if out, ok := v.perBP[probe]; ok {
				return out, true
			}
		}
	}
	var zero T
	return zero, false
}

// Validate applies check to every entry and returns the first failure.
// An unset Value validates trivially.
func (v Value[T]) Validate(check func(T) error) error {
	switch v.kind {
	case kindScalar:
		return check(v.scalar)
	case kindMap:
		for _, bp := range breakpoint.All() {
			if entry, ok := v.perBP[bp]; ok {
				if err := check(entry); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Convert maps every entry of v through fn, preserving its shape:
// scalars stay scalar, per-class maps keep their classes, unset stays
// unset.
func Convert[T, U any](v Value[T], fn func(T) U) Value[U] {
	switch v.kind {
	case kindScalar:
		return Fixed(fn(v.scalar))
	case kindMap:
		out := make(map[breakpoint.Breakpoint]U, len(v.perBP))
		for bp, entry := range v.perBP {
			out[bp] = fn(entry)
		}
		return Value[U]{kind: kindMap, perBP: out}
	default:
		return Value[U]{}
	}
}
