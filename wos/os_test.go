package wos

import (
	"testing"

	"kr.dev/diff"

	"github.com/indexsupply/inkwrap/tc"
)

func TestGetenv(t *testing.T) {
	t.Setenv("INKWRAP_TEST_URL", "http://node:9944")
	cases := []struct {
		input string
		want  string
		err   string
	}{
		{"", "", ""},
		{"http://localhost:9944", "http://localhost:9944", ""},
		{"$INKWRAP_TEST_URL", "http://node:9944", ""},
		{"$inkwrap_test_url", "http://node:9944", ""},
		{"$INKWRAP_TEST_MISSING", "", "expected $INKWRAP_TEST_MISSING to be set"},
	}
	for _, tt := range cases {
		got, err := Getenv(tt.input)
		if tt.err != "" {
			tc.WantErrMsg(t, err, tt.err)
			continue
		}
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, tt.want)
	}
}

func TestEnvString(t *testing.T) {
	t.Setenv("INKWRAP_TEST_URL", "http://node:9944")
	var es EnvString
	tc.NoErr(t, es.Set("$INKWRAP_TEST_URL"))
	diff.Test(t, t.Errorf, es.String(), "http://node:9944")
	tc.WantErrMsg(t, es.Set("$INKWRAP_TEST_MISSING"), "to be set")
	diff.Test(t, t.Errorf, es.String(), "http://node:9944")
}
