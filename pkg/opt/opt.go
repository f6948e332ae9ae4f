// Package opt holds a small tagged value used wherever a caller may leave a
// field unspecified so that an ambient default applies instead.
//
// The zero Value is unspecified:
//
//	var fg opt.Value[codec.Color]      // unspecified
//	fg = opt.Some(codec.Cyan)          // explicit
//	c := fg.Or(ambientNormal)          // merge with the ambient default
package opt

import "fmt"

// Value is either unspecified or carries an explicit value of type T
type Value[T any] struct {
	v   T
	set bool
}

// Some returns an explicit value
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// None returns an unspecified value
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it was set
func (o Value[T]) Get() (T, bool) { return o.v, o.set }

// Or returns the explicit value, or def when unspecified
func (o Value[T]) Or(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// OrElse is Or taking another Value as the fallback
func (o Value[T]) OrElse(def Value[T]) Value[T] {
	if o.set {
		return o
	}
	return def
}

func (o Value[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.v)
}
