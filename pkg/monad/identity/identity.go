package identity

import "fmt"

// Identity holds exactly one value. It has no short-circuit state.
type Identity[T any] struct {
	value T
}

func Of[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

func (m Identity[T]) Value() T {
	return m.value
}

func (m Identity[T]) Get() (T, bool) {
	return m.value, true
}

func (m Identity[T]) IsShortCircuit() bool {
	return false
}

// Bind applies f to the held value and returns its result unchanged
func (m Identity[T]) Bind(f func(T) Identity[T]) Identity[T] {
	return f(m.value)
}

func (m Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", m.value)
}

// Bind sequences f after m, switching the payload type from T to U
func Bind[T, U any](m Identity[T], f func(T) Identity[U]) Identity[U] {
	return f(m.value)
}

func Map[T, U any](m Identity[T], f func(T) U) Identity[U] {
	return Of(f(m.value))
}

func Join[T any](m Identity[Identity[T]]) Identity[T] {
	return m.value
}
