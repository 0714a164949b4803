// This package implements the subset of the SCALE codec
// that ink! contracts use on the wire.
// See: https://docs.substrate.io/reference/scale-codec/
//
// Instead of reflection, every type is paired with an
// encode function and a decode function. Generated bindings
// compose these functions to mirror the contract's types.
package scale

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewBytes  = errors.New("input has fewer bytes than required")
	ErrTooManyBytes = errors.New("input has bytes left after decoding")
	ErrBool         = errors.New("invalid bool byte")
	ErrChar         = errors.New("invalid char")
	ErrString       = errors.New("invalid utf-8 string")
	ErrOption       = errors.New("invalid option byte")
	ErrResult       = errors.New("invalid result byte")
	ErrCompact      = errors.New("compact integer overflows target")
	ErrLength       = errors.New("length prefix larger than input")
)

// Encoder accumulates an encoded value.
// Encoding cannot fail; the zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder whose output starts
// with a copy of prefix. Contract calls use the
// selector as prefix.
func NewEncoder(prefix []byte) *Encoder {
	e := &Encoder{buf: make([]byte, len(prefix), len(prefix)+32)}
	copy(e.buf, prefix)
	return e
}

func (e *Encoder) Bytes() []byte { return e.buf }
func (e *Encoder) Len() int      { return len(e.buf) }

func (e *Encoder) Byte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *Encoder) Write(b []byte) {
	e.buf = append(e.buf, b...)
}

// Decoder reads values from a byte slice.
// The first error is sticky: once set, every
// read returns zero values and Err reports it.
type Decoder struct {
	b   []byte
	pos int
	err error
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{b: b}
}

func (d *Decoder) Err() error     { return d.err }
func (d *Decoder) Remaining() int { return len(d.b) - d.pos }

// Fail records err unless an earlier error exists.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Next returns the next n bytes without copying them.
func (d *Decoder) Next(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.Remaining() < n {
		d.Fail(fmt.Errorf("reading %d at %d: %w", n, d.pos, ErrTooFewBytes))
		return nil
	}
	b := d.b[d.pos : d.pos+n]
	d.pos += n
	return b
}

func (d *Decoder) Byte() byte {
	b := d.Next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadInto fills dst with the next len(dst) bytes.
func (d *Decoder) ReadInto(dst []byte) {
	copy(dst, d.Next(len(dst)))
}

// Marshal encodes v using enc.
func Marshal[T any](enc func(*Encoder, T), v T) []byte {
	var e Encoder
	enc(&e, v)
	return e.Bytes()
}

// Unmarshal decodes b using dec. All of b must be consumed.
func Unmarshal[T any](dec func(*Decoder) T, b []byte) (T, error) {
	d := NewDecoder(b)
	v := dec(d)
	if err := d.Err(); err != nil {
		var zero T
		return zero, err
	}
	if n := d.Remaining(); n > 0 {
		var zero T
		return zero, fmt.Errorf("%d bytes: %w", n, ErrTooManyBytes)
	}
	return v, nil
}

// VariantError reports an unknown discriminant
// while decoding the named sum type.
type VariantError struct {
	Type  string
	Index byte
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: unknown variant index %d", e.Type, e.Index)
}

// BadVariant is used by generated encoders when a
// sum type holds a value that is not one of its
// declared alternatives (including nil).
func BadVariant(typ string, v any) string {
	return fmt.Sprintf("scale: %s cannot encode %T", typ, v)
}
