// key=value slog handler used by the inkwrap
// command and backends
//
// Adapted from: https://github.com/jba/slog
// BSD 3-Clause License
// Copyright (c) 2022, Jonathan Amsterdam
package wslog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Options struct {
	Level     slog.Leveler
	AddSource bool

	// Color the level of warnings and errors.
	// fatih/color disables this when the output
	// isn't a terminal or NO_COLOR is set.
	Color bool
}

type Handler struct {
	opts      Options
	prefix    string
	preformat string

	mu   *sync.Mutex
	ctxs *[]func(context.Context) (string, any)
	w    io.Writer
}

func New(w io.Writer, opts *Options) *Handler {
	h := &Handler{
		w:    w,
		mu:   &sync.Mutex{},
		ctxs: &[]func(context.Context) (string, any){},
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// RegisterContext adds f to the functions called for
// every record. f returns the key and value to log
// or an empty key to log nothing. Handlers derived
// with WithAttrs and WithGroup share registrations.
func (h *Handler) RegisterContext(f func(context.Context) (string, any)) {
	h.mu.Lock()
	*h.ctxs = append(*h.ctxs, f)
	h.mu.Unlock()
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *Handler) clone() *Handler {
	c := *h
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = h.prefix + name + "."
	return c
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf []byte
	for _, a := range attrs {
		buf = appendAttr(buf, h.prefix, a)
	}
	c := h.clone()
	c.preformat = h.preformat + string(buf)
	return c
}

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

func (h *Handler) level(l slog.Level) string {
	s := fmt.Sprintf("%-5s", strings.ToLower(l.String()))
	if !h.opts.Color {
		return s
	}
	switch {
	case l >= slog.LevelError:
		return errorColor.Sprint(s)
	case l >= slog.LevelWarn:
		return warnColor.Sprint(s)
	default:
		return s
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	buf = append(buf, "l="...)
	buf = append(buf, h.level(r.Level)...)
	buf = append(buf, ' ')
	if len(r.Message) > 0 {
		buf = append(buf, "msg="...)
		buf = appendValue(buf, r.Message)
		buf = append(buf, ' ')
	}

	h.mu.Lock()
	ctxs := *h.ctxs
	h.mu.Unlock()
	for _, f := range ctxs {
		k, v := f(ctx)
		if k == "" {
			continue
		}
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = appendValue(buf, fmt.Sprint(v))
		buf = append(buf, ' ')
	}
	buf = append(buf, h.preformat...)
	if h.opts.AddSource && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		buf = append(buf, "src="...)
		buf = append(buf, f.File...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(f.Line), 10)
		buf = append(buf, ' ')
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf[:len(buf)-1], '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// values with spaces or quotes are quoted so
// that lines stay splittable on spaces
func appendValue(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() != slog.KindGroup {
		buf = append(buf, prefix...)
		buf = append(buf, a.Key...)
		buf = append(buf, '=')
		buf = appendValue(buf, a.Value.String())
		return append(buf, ' ')
	}
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, ga := range a.Value.Group() {
		buf = appendAttr(buf, prefix, ga)
	}
	return buf
}
