package result

import (
	"errors"

	"github.com/ib-77/monad3/pkg/monad"
)

// Validate keeps r when validate accepts its value and fails with the
// returned error otherwise.
func Validate[T, E any](r Result[T, E], validate func(T) (valid bool, err E)) Result[T, E] {
	if !r.ok {
		return r
	}

	if valid, err := validate(r.value); !valid {
		return Err[T](err)
	}
	return r
}

// ValidateAll runs validators in order against the value of r. With
// breakOnError it stops at the first failure, otherwise all failures are
// joined with errors.Join.
func ValidateAll[T any](r Fallible[T], breakOnError bool, validators ...func(T) error) Fallible[T] {
	if !r.ok {
		return r
	}

	var errs []error
	for _, validate := range validators {
		err := validate(r.value)
		if err == nil {
			continue
		}

		if breakOnError {
			return Err[T](err)
		}
		errs = append(errs, monad.GetErrors(err)...)
	}

	if len(errs) > 0 {
		return Err[T](errors.Join(errs...))
	}
	return r
}

// FirstOk returns the first Ok among candidates, or the first Err when none succeeded
func FirstOk[T, E any](first Result[T, E], rest ...Result[T, E]) Result[T, E] {
	if first.ok {
		return first
	}

	for _, r := range rest {
		if r.ok {
			return r
		}
	}
	return first
}

// All collects the values of results, failing with the first Err met
func All[T, E any](results ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}
