package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTrace(t *testing.T) {
	cases := map[string]struct {
		Err     error
		WantMsg string
	}{
		"wrapped registered error": {
			Err:     Wrap(ErrDuplicateOwner, "owner"),
			WantMsg: "owner: duplicate owner",
		},
		"wrapped stdlib error": {
			Err:     Wrapf(stdlib.New("closed"), "read %d", 4),
			WantMsg: "read 4: closed",
		},
		"field error": {
			Err:     Field("Source", ErrMissingSource, ""),
			WantMsg: `field "Source": missing source`,
		},
		"stack is recorded once": {
			Err:     Wrap(Wrap(ErrInvalidKey, "inner"), "outer"),
			WantMsg: "outer: inner: invalid key",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.WantMsg, fmt.Sprintf("%v", tc.Err))
			if !assert.NotNil(t, stackTrace(tc.Err)) {
				return
			}

			full := fmt.Sprintf("%+v", tc.Err)
			assert.Contains(t, full, tc.WantMsg)
			if !strings.Contains(full, "errors/stacktrace_test.go") {
				t.Errorf("stack trace does not point to the caller:\n%s", full)
			}
		})
	}
}
