package optional

import (
	"errors"
	"fmt"

	"github.com/ib-77/monad3/pkg/monad"
)

var ErrAbsent = errors.New("optional: value is absent")

type Optional[T any] struct {
	value   T
	present bool
}

// Of lifts v into a Present. It never produces Absent.
func Of[T any](v T) Optional[T] {
	return Present(v)
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent carries no payload, so every Absent[T] equals every other.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func Empty[T any]() Optional[T] {
	return Absent[T]()
}

func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromNillable treats a nil pointer, map, slice, chan, func or interface as absence
func FromNillable[T any](v T) Optional[T] {
	if monad.IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

// FromOK adapts the comma-ok idiom, e.g. FromOK(m[key])
func FromOK[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

func (o Optional[T]) IsShortCircuit() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet panics with ErrAbsent on Absent
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrAbsent)
	}
	return o.value
}

func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

func (o Optional[T]) OrElseGet(def func() T) T {
	if !o.present {
		return def()
	}
	return o.value
}

// Bind calls f only on Present and returns its result unchanged
func (o Optional[T]) Bind(f func(T) Optional[T]) Optional[T] {
	return Bind(o, f)
}

// Or returns o if it is Present, alternative otherwise
func (o Optional[T]) Or(alternative Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return alternative
}

func (o Optional[T]) Filter(keep func(T) bool) Optional[T] {
	if !o.present || !keep(o.value) {
		return Absent[T]()
	}
	return o
}

// Tee runs onPresent for its side effect and returns o as is
func (o Optional[T]) Tee(onPresent func(T)) Optional[T] {
	if o.present && onPresent != nil {
		onPresent(o.value)
	}
	return o
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}

func Bind[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Absent[U]()
	}
	return f(o.value)
}

func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.present {
		return Absent[U]()
	}
	return Present(f(o.value))
}

func Fold[T, U any](o Optional[T], onPresent func(T) U, onAbsent func() U) U {
	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}

func Join[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.present {
		return Absent[T]()
	}
	return o.value
}
