package wslog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"kr.dev/diff"
)

type wslogTestKey struct{}

func TestHandler_Context(t *testing.T) {
	var (
		ctx = context.Background()
		buf bytes.Buffer
		h   = New(&buf, nil)
	)
	h.RegisterContext(func(ctx context.Context) (string, any) {
		v, ok := ctx.Value(wslogTestKey{}).(string)
		if !ok {
			return "", nil
		}
		return "contract", v
	})
	log := slog.New(h).With("a", 1)

	log.InfoContext(context.WithValue(ctx, wslogTestKey{}, "flipper"), "")
	log.InfoContext(ctx, "x")
	diff.Test(t, t.Errorf, buf.String(), ""+
		"l=info  contract=flipper a=1\n"+
		"l=info  msg=x a=1\n",
	)
}

func TestHandler(t *testing.T) {
	cases := []struct {
		name  string
		with  func(*slog.Logger) *slog.Logger
		msg   string
		attrs []slog.Attr
		want  string
	}{
		{
			name:  "basic",
			attrs: []slog.Attr{slog.String("foo", "bar")},
			msg:   "baz",
			want:  "l=info  msg=baz foo=bar\n",
		},
		{
			name:  "quoted",
			attrs: []slog.Attr{slog.Any("error", errors.New("no such file"))},
			msg:   "reading metadata",
			want:  `l=info  msg="reading metadata" error="no such file"` + "\n",
		},
		{
			name: "group",
			attrs: []slog.Attr{
				slog.String("foo", "bar"),
				slog.Group("baz", slog.Int("a", 1), slog.Int("b", 2)),
				slog.Bool("qux", true),
			},
			want: "l=info  foo=bar baz.a=1 baz.b=2 qux=true\n",
		},
		{
			name:  "WithAttrs",
			with:  func(l *slog.Logger) *slog.Logger { return l.With("wa", 1, "wb", 2) },
			attrs: []slog.Attr{slog.String("c", "foo"), slog.Bool("b", true)},
			want:  "l=info  wa=1 wb=2 c=foo b=true\n",
		},
		{
			name: "WithAttrs,WithGroup",
			with: func(l *slog.Logger) *slog.Logger {
				return l.With("wa", 1, "wb", 2).WithGroup("p1").With("wc", 3).WithGroup("p2")
			},
			attrs: []slog.Attr{slog.String("c", "foo"), slog.Bool("b", true)},
			want:  "l=info  wa=1 wb=2 p1.wc=3 p1.p2.c=foo p1.p2.b=true\n",
		},
	}

	for _, tc := range cases {
		var (
			ctx = context.Background()
			buf bytes.Buffer
			l   = slog.New(New(&buf, nil))
		)
		if tc.with != nil {
			l = tc.with(l)
		}
		l.LogAttrs(ctx, slog.LevelInfo, tc.msg, tc.attrs...)
		diff.Test(t, t.Errorf, buf.String(), tc.want)
	}
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(New(&buf, &Options{Level: slog.LevelDebug}))
	l.Debug("d")
	l.Error("e")
	diff.Test(t, t.Errorf, buf.String(), "l=debug msg=d\nl=error msg=e\n")

	buf.Reset()
	slog.New(New(&buf, nil)).Debug("hidden")
	diff.Test(t, t.Errorf, buf.String(), "")
}
