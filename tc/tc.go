// test helpers shared by the inkwrap packages
package tc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func NoErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("expected no error. got: %s", err)
	}
}

func WantGot(tb testing.TB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(want, got) {
		tb.Error(pretty.Sprintf("want: %# v got: %# v", want, got))
	}
}

// WantErr fails unless err matches target with errors.Is.
func WantErr(tb testing.TB, err, target error) {
	tb.Helper()
	if !errors.Is(err, target) {
		tb.Errorf("want error %q got: %v", target, err)
	}
}

// WantErrMsg fails unless err is set and its message contains s.
func WantErrMsg(tb testing.TB, err error, s string) {
	tb.Helper()
	switch {
	case err == nil:
		tb.Errorf("want error containing %q got nil", s)
	case !strings.Contains(err.Error(), s):
		tb.Errorf("want error containing %q got: %s", s, err)
	}
}

// Contains fails when any of subs is missing from s.
func Contains(tb testing.TB, s string, subs ...string) {
	tb.Helper()
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			tb.Errorf("missing %q", sub)
		}
	}
}
