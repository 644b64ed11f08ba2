package result

import (
	"fmt"
)

type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Fallible is a Result carrying a Go error on failure
type Fallible[T any] = Result[T, error]

// Of lifts v into Ok
func Of[T, E any](v T) Result[T, E] {
	return Ok[T, E](v)
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err is a failure holding e. The tag decides the state, so Err(nil) is
// still a failure.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// FromPair adapts the (value, error) return convention
func FromPair[T any](v T, err error) Fallible[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) IsShortCircuit() bool {
	return !r.ok
}

// Value returns the successful value, the zero T on Err
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure, the zero E on Ok
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

func (r Result[T, E]) Unwrap() (T, E) {
	return r.value, r.err
}

func (r Result[T, E]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Bind calls f only on Ok and returns its result unchanged
func (r Result[T, E]) Bind(f func(T) Result[T, E]) Result[T, E] {
	return Bind(r, f)
}

// OrElse calls f only on Err, letting the caller continue the chain
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	return Recover(r, f)
}

func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}

func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

func Recover[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

// Try calls f on Ok and turns a non-nil error into Err
func Try[T, U any](r Fallible[T], f func(T) (U, error)) Fallible[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	u, err := f(r.value)
	return FromPair(u, err)
}

func Fold[T, E, Out any](r Result[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

func Tee[T, E any](r Result[T, E], onOk func(T)) Result[T, E] {
	if r.ok && onOk != nil {
		onOk(r.value)
	}
	return r
}

func TeeErr[T, E any](r Result[T, E], onErr func(E)) Result[T, E] {
	if !r.ok && onErr != nil {
		onErr(r.err)
	}
	return r
}
