package errors

import (
	"fmt"
	"reflect"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no error or only nil values are given, nil is returned. A single error
// is returned as it is, without being wrapped.
func Append(errs ...error) error {
	var flat []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(*multiErr); ok {
			flat = append(flat, m.errs...)
		} else {
			flat = append(flat, err)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiErr{errs: flat}
	}
}

// multiErr represents a set of errors. It is used to report more than one
// failure at once, for example when validating a configuration.
type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	points := make([]string, len(m.errs))
	for i, err := range m.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m.errs), strings.Join(points, "\n\t"))
}

// Unpack returns all errors clubbed together by this instance.
func (m *multiErr) Unpack() []error {
	return m.errs
}

// Cause returns the first error, consistent with a fail fast approach.
func (m *multiErr) Cause() error {
	return m.errs[0]
}

// unpacker is implemented by errors that group together more than one error
// instance.
type unpacker interface {
	Unpack() []error
}

func isNilErr(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
