package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput stands for general input problems indication.
	ErrInvalidInput = Register(2, "invalid input")

	// ErrInvalidAddress is returned when an address does not pass the
	// format or checksum check of the network address codec.
	ErrInvalidAddress = Register(3, "invalid address")

	// ErrInvalidKey is returned when a key cannot be decoded or does not
	// belong to the curve of its algorithm.
	ErrInvalidKey = Register(4, "invalid key")

	// ErrInvalidFee is returned when a fee value is malformed or not
	// greater than zero.
	ErrInvalidFee = Register(5, "invalid fee")

	// ErrDuplicateOwner is returned when an owner is added twice to the
	// same owner set.
	ErrDuplicateOwner = Register(6, "duplicate owner")

	// ErrTooManyOwners is returned when an owner set would exceed its
	// maximum size.
	ErrTooManyOwners = Register(7, "too many owners")

	// ErrWrongOwnerCount is returned at build time when the number of
	// owners does not match the required quorum size.
	ErrWrongOwnerCount = Register(8, "wrong owner count")

	// ErrMissingFee is returned at build time when no fee was set.
	ErrMissingFee = Register(9, "missing fee")

	// ErrMissingSource is returned at build time when no source address
	// was set.
	ErrMissingSource = Register(10, "missing source")

	// ErrMissingPrivateKey is returned when a key pair without a private
	// part is used for signing.
	ErrMissingPrivateKey = Register(11, "missing private key")

	// ErrUnregisteredNetwork is returned when a network identifier was
	// never registered.
	ErrUnregisteredNetwork = Register(12, "unregistered network")

	// ErrUnsupportedTxType is returned when a network does not support
	// the requested transaction type.
	ErrUnsupportedTxType = Register(13, "unsupported transaction type")

	// ErrMalformedTx is returned when a serialized transaction cannot be
	// decoded.
	ErrMalformedTx = Register(14, "malformed transaction")

	// ErrInvalidSignature is returned for signatures of a wrong length or
	// signatures that do not verify.
	ErrInvalidSignature = Register(15, "invalid signature")

	// ErrCannotBeModified is returned when something that is considered
	// immutable gets modified, for example a field of a builder that was
	// seeded from a serialized transaction.
	ErrCannotBeModified = Register(16, "cannot be modified")

	// ErrInvalidAmount stands for invalid amount of whatever.
	ErrInvalidAmount = Register(17, "invalid amount")

	// ErrMissingRecipient is returned at build time when a transfer has
	// no destination.
	ErrMissingRecipient = Register(18, "missing recipient")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register declares a new error kind with a unique code. Registering a code
// twice panics, so call it only from package level variable declarations.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes maps every registered code to its error. Code 1 is reserved for
// errors that are not registered.
var usedCodes = map[uint32]*Error{
	1: nil,
}

// CodeOf returns the code of the kind err was created from. 1 is returned
// for errors that were not created from a registered kind, 0 for nil.
func CodeOf(err error) uint32 {
	if isNilErr(err) {
		return 0
	}
	if k := Kind(err); k != nil {
		return k.code
	}
	return 1
}

// Error is a registered error kind. Errors returned by this module wrap one of
// the kinds declared above, so that callers can test them with Is and map
// them to a stable code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered code of this error.
func (e Error) Code() uint32 {
	return e.code
}

// New returns an error of this kind with a description. It is a shortcut for
// Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with a formatted description.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is returns true if err, or any error it wraps or groups, is this kind.
// A nil kind matches only a nil error.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return isNilErr(err)
	}
	return visit(err, func(e error) bool { return e == kind })
}

// Kind returns the registered error that err was created from, or nil if
// there is none. Grouped errors report the kind of the first one.
func Kind(err error) *Error {
	var kind *Error
	visit(err, func(e error) bool {
		kind, _ = e.(*Error)
		return kind != nil
	})
	return kind
}

// visit calls fn for err and every error it wraps or groups, depth first,
// until fn returns true. It returns true if fn did.
func visit(err error, fn func(error) bool) bool {
	for !isNilErr(err) {
		if fn(err) {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				if visit(e, fn) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap returns err extended with a description. Returns nil if err is nil.
//
// The stack trace is recorded once, by the innermost wrap.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap allows the standard library errors.Is and errors.As to traverse
// the chain.
func (e *wrappedError) Unwrap() error {
	return e.parent
}

// Format prints the stack trace of the wrapped error when the %+v verb is
// used.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.Error(), stackTrace(e.parent))
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover stops a panic and assigns it to err as an ErrPanic. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace carried by err or any error it
// wraps, or nil.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	for !isNilErr(err) && st == nil {
		if t, ok := err.(stackTracer); ok {
			st = t.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return st
}
