// Package assert provides test helpers that understand the error kinds and
// field errors of this module.
package assert

import (
	"reflect"

	"github.com/iov-one/txkit/errors"
)

// Tester is the part of testing.TB used by the helpers.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
	Errorf(string, ...interface{})
	Logf(string, ...interface{})
}

// Nil fails the test unless value is nil or a typed nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if isNil(value) {
		return
	}
	// %+v prints the stack trace of errors that carry one.
	t.Fatalf("want a nil value, got %+v", value)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// IsErr fails the test unless got is of the want kind. A nil want
// expects no error.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %v, got %+v", want, got)
	}
}

// FieldError fails the test unless err holds exactly one error bound to the
// named field and that error is of the want kind. Pass a nil want to ensure
// the field has no error.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()

	found := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(found) == 0:
		return
	case want == nil:
		logAll(t, found)
		t.Fatalf("want no %q field error, got %d", field, len(found))
	case len(found) == 0:
		t.Fatalf("want %q field error of %v kind, got none in %+v", field, want, err)
	case len(found) > 1:
		logAll(t, found)
		t.Errorf("want one %q field error, got %d", field, len(found))
	case !want.Is(found[0]):
		t.Fatalf("want %q field error of %v kind, got %q", field, want, found[0])
	}
}

func logAll(t Tester, errs []error) {
	t.Helper()
	for i, e := range errs {
		t.Logf("\terror %d: %q", i+1, e)
	}
}
