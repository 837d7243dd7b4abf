package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field attaches the name of the offending attribute to err. Returns nil if
// err is nil.
//
// Names follow Go naming, for example GasLimit. A nested attribute is
// addressed with dot notation and list elements by their index, for example
// Approvals.1 or Networks.0.ID. Use FieldPath to build such names.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{name: name, desc: description, cause: err}
}

// AppendField returns errs extended with err bound to the given attribute
// name. Nil errors are ignored.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

// FieldPath joins given elements into a dot separated attribute name.
// Integers are used as list indexes.
func FieldPath(elems ...interface{}) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case string:
			parts[i] = v
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, ".")
}

type fieldError struct {
	name  string
	desc  string
	cause error
}

func (e *fieldError) Error() string {
	if e.desc != "" {
		return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.cause)
	}
	return fmt.Sprintf("field %q: %s", e.name, e.cause)
}

func (e *fieldError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.Error(), stackTrace(e.cause))
		return
	}
	fmt.Fprint(s, e.Error())
}

func (e *fieldError) Cause() error  { return e.cause }
func (e *fieldError) Unwrap() error { return e.cause }
func (e *fieldError) Field() string { return e.name }

type fielder interface {
	Field() string
}

// FieldErrors returns all errors bound to the given attribute name that can
// be found in the err tree. Grouped errors are searched in order.
func FieldErrors(err error, name string) []error {
	var found []error
	walkFields(err, func(e error, field string) bool {
		if field != name {
			return false
		}
		found = append(found, e)
		return true
	})
	return found
}

// walkFields calls fn for every field error in the tree. Children of a field
// error are not visited if fn returns true.
func walkFields(err error, fn func(error, string) bool) {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && fn(err, f.Field()) {
			return
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				walkFields(e, fn)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
