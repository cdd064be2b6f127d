// Package optional provides the presence-indicating container used by
// generated projection types.
//
// A projection wraps each field marked optional(...) in an Opt so that a
// rebuilt record can tell "the projection already carries a value" apart
// from "the caller must supply one". Resolution during reconstruction is
// self-value-wins: p.Field.Or(fallback).MustGet().
package optional

import "fmt"

// Opt holds either a value of type T or nothing.
// The zero value is empty.
type Opt[T any] struct {
	val     T
	present bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, present: true}
}

// None returns an empty Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Opt is empty.
func (o Opt[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.present
}

// Or returns o if it holds a value, otherwise fallback.
func (o Opt[T]) Or(fallback Opt[T]) Opt[T] {
	if o.present {
		return o
	}

	return fallback
}

// OrElse returns the held value, or v if the Opt is empty.
func (o Opt[T]) OrElse(v T) T {
	if o.present {
		return o.val
	}

	return v
}

// MustGet returns the held value and panics if the Opt is empty.
// This is the single runtime failure of generated reconstruction code:
// an optional field resolved by neither the projection nor the caller.
func (o Opt[T]) MustGet() T {
	if !o.present {
		panic("optional: no value present")
	}

	return o.val
}

// String returns "Some(v)" or "None".
func (o Opt[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.val)
}
