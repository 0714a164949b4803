package scale

import "fmt"

func EncodeSeq[T any](enc func(*Encoder, T)) func(*Encoder, []T) {
	return func(e *Encoder, v []T) {
		EncodeLen(e, len(v))
		for i := range v {
			enc(e, v[i])
		}
	}
}

func DecodeSeq[T any](dec func(*Decoder) T) func(*Decoder) []T {
	return func(d *Decoder) []T {
		n := DecodeLen(d)
		if d.Err() != nil {
			return nil
		}
		// avoid trusting the prefix for the allocation
		v := make([]T, 0, min(n, d.Remaining()))
		for i := 0; i < n && d.Err() == nil; i++ {
			v = append(v, dec(d))
		}
		return v
	}
}

// Fixed size arrays carry no length prefix.
// Generated code passes arrays as slices of themselves.
func EncodeArray[T any](e *Encoder, enc func(*Encoder, T), v []T) {
	for i := range v {
		enc(e, v[i])
	}
}

func DecodeArray[T any](d *Decoder, dec func(*Decoder) T, dst []T) {
	for i := range dst {
		dst[i] = dec(d)
	}
}

type Option[T any] struct {
	Some  bool
	Value T
}

func Some[T any](v T) Option[T] { return Option[T]{Some: true, Value: v} }
func None[T any]() Option[T]    { return Option[T]{} }

func (o Option[T]) Get() (T, bool) { return o.Value, o.Some }

func EncodeOption[T any](enc func(*Encoder, T)) func(*Encoder, Option[T]) {
	return func(e *Encoder, v Option[T]) {
		if !v.Some {
			e.Byte(0)
			return
		}
		e.Byte(1)
		enc(e, v.Value)
	}
}

func DecodeOption[T any](dec func(*Decoder) T) func(*Decoder) Option[T] {
	return func(d *Decoder) Option[T] {
		switch b := d.Byte(); b {
		case 0:
			return Option[T]{}
		case 1:
			return Some(dec(d))
		default:
			d.Fail(fmt.Errorf("%d: %w", b, ErrOption))
			return Option[T]{}
		}
	}
}

// Option<bool> is packed into a single byte:
// 0 is None, 1 is Some(true), 2 is Some(false).
func EncodeOptionBool(e *Encoder, v Option[bool]) {
	switch {
	case !v.Some:
		e.Byte(0)
	case v.Value:
		e.Byte(1)
	default:
		e.Byte(2)
	}
}

func DecodeOptionBool(d *Decoder) Option[bool] {
	switch b := d.Byte(); b {
	case 0:
		return Option[bool]{}
	case 1:
		return Some(true)
	case 2:
		return Some(false)
	default:
		d.Fail(fmt.Errorf("%d: %w", b, ErrOption))
		return Option[bool]{}
	}
}

// Result holds Ok unless IsErr is set.
type Result[T, E any] struct {
	Ok    T
	Err   E
	IsErr bool
}

func Ok[T, E any](v T) Result[T, E]  { return Result[T, E]{Ok: v} }
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{Err: e, IsErr: true} }

// Unwrap returns Ok or an error describing Err.
// When E implements error it is returned as is.
func (r Result[T, E]) Unwrap() (T, error) {
	if !r.IsErr {
		return r.Ok, nil
	}
	var zero T
	if err, ok := any(r.Err).(error); ok {
		return zero, err
	}
	return zero, fmt.Errorf("result error: %v", r.Err)
}

func EncodeResult[T, E any](encT func(*Encoder, T), encE func(*Encoder, E)) func(*Encoder, Result[T, E]) {
	return func(e *Encoder, v Result[T, E]) {
		if v.IsErr {
			e.Byte(1)
			encE(e, v.Err)
			return
		}
		e.Byte(0)
		encT(e, v.Ok)
	}
}

func DecodeResult[T, E any](decT func(*Decoder) T, decE func(*Decoder) E) func(*Decoder) Result[T, E] {
	return func(d *Decoder) Result[T, E] {
		switch b := d.Byte(); b {
		case 0:
			return Ok[T, E](decT(d))
		case 1:
			return Err[T](decE(d))
		default:
			d.Fail(fmt.Errorf("%d: %w", b, ErrResult))
			return Result[T, E]{}
		}
	}
}
