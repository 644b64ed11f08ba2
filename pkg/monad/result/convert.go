package result

import "github.com/ib-77/monad3/pkg/monad/optional"

// FromOptional maps Present to Ok and Absent to Err(onAbsent)
func FromOptional[T, E any](o optional.Optional[T], onAbsent E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](onAbsent)
}

// ToOptional drops the error
func ToOptional[T, E any](r Result[T, E]) optional.Optional[T] {
	if !r.ok {
		return optional.Absent[T]()
	}
	return optional.Present(r.value)
}
