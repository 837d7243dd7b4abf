/*
Package errors implements the error taxonomy of txkit.

The idea is to reuse as many errors from this package as possible. Every
error returned by txkit packages wraps one of the root errors declared here,
so that callers can test for a failure kind using the Is method:

	if errors.ErrMissingFee.Is(err) {
		// ask the user for a fee
	}

Root errors are created with Register(code, description). Codes are unique
and registering the same code twice panics.

Use ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to
ensure a stacktrace is attached. If you wrap multiple times, only the first
wrap records the stacktrace.

Once you have an error, you can use fmt to get more context

	%s is just the error message
	%+v is the error message followed by the stack trace
*/
package errors
