package monad

import (
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan,
// func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
