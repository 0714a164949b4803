package scale

// Tuples are encoded as the concatenation of their elements.

const MaxTuple = 6

type Tuple1[A any] struct {
	F0 A
}

type Tuple2[A, B any] struct {
	F0 A
	F1 B
}

type Tuple3[A, B, C any] struct {
	F0 A
	F1 B
	F2 C
}

type Tuple4[A, B, C, D any] struct {
	F0 A
	F1 B
	F2 C
	F3 D
}

type Tuple5[A, B, C, D, E any] struct {
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
	F5 F
}

func EncodeTuple1[A any](a func(*Encoder, A)) func(*Encoder, Tuple1[A]) {
	return func(e *Encoder, v Tuple1[A]) {
		a(e, v.F0)
	}
}

func DecodeTuple1[A any](a func(*Decoder) A) func(*Decoder) Tuple1[A] {
	return func(d *Decoder) (v Tuple1[A]) {
		v.F0 = a(d)
		return v
	}
}

func EncodeTuple2[A, B any](a func(*Encoder, A), b func(*Encoder, B)) func(*Encoder, Tuple2[A, B]) {
	return func(e *Encoder, v Tuple2[A, B]) {
		a(e, v.F0)
		b(e, v.F1)
	}
}

func DecodeTuple2[A, B any](a func(*Decoder) A, b func(*Decoder) B) func(*Decoder) Tuple2[A, B] {
	return func(d *Decoder) (v Tuple2[A, B]) {
		v.F0 = a(d)
		v.F1 = b(d)
		return v
	}
}

func EncodeTuple3[A, B, C any](
	a func(*Encoder, A),
	b func(*Encoder, B),
	c func(*Encoder, C),
) func(*Encoder, Tuple3[A, B, C]) {
	return func(e *Encoder, v Tuple3[A, B, C]) {
		a(e, v.F0)
		b(e, v.F1)
		c(e, v.F2)
	}
}

func DecodeTuple3[A, B, C any](
	a func(*Decoder) A,
	b func(*Decoder) B,
	c func(*Decoder) C,
) func(*Decoder) Tuple3[A, B, C] {
	return func(d *Decoder) (v Tuple3[A, B, C]) {
		v.F0 = a(d)
		v.F1 = b(d)
		v.F2 = c(d)
		return v
	}
}

func EncodeTuple4[A, B, C, D any](
	a func(*Encoder, A),
	b func(*Encoder, B),
	c func(*Encoder, C),
	d func(*Encoder, D),
) func(*Encoder, Tuple4[A, B, C, D]) {
	return func(e *Encoder, v Tuple4[A, B, C, D]) {
		a(e, v.F0)
		b(e, v.F1)
		c(e, v.F2)
		d(e, v.F3)
	}
}

func DecodeTuple4[A, B, C, D any](
	a func(*Decoder) A,
	b func(*Decoder) B,
	c func(*Decoder) C,
	d func(*Decoder) D,
) func(*Decoder) Tuple4[A, B, C, D] {
	return func(r *Decoder) (v Tuple4[A, B, C, D]) {
		v.F0 = a(r)
		v.F1 = b(r)
		v.F2 = c(r)
		v.F3 = d(r)
		return v
	}
}

func EncodeTuple5[A, B, C, D, E any](
	a func(*Encoder, A),
	b func(*Encoder, B),
	c func(*Encoder, C),
	d func(*Encoder, D),
	e func(*Encoder, E),
) func(*Encoder, Tuple5[A, B, C, D, E]) {
	return func(w *Encoder, v Tuple5[A, B, C, D, E]) {
		a(w, v.F0)
		b(w, v.F1)
		c(w, v.F2)
		d(w, v.F3)
		e(w, v.F4)
	}
}

func DecodeTuple5[A, B, C, D, E any](
	a func(*Decoder) A,
	b func(*Decoder) B,
	c func(*Decoder) C,
	d func(*Decoder) D,
	e func(*Decoder) E,
) func(*Decoder) Tuple5[A, B, C, D, E] {
	return func(r *Decoder) (v Tuple5[A, B, C, D, E]) {
		v.F0 = a(r)
		v.F1 = b(r)
		v.F2 = c(r)
		v.F3 = d(r)
		v.F4 = e(r)
		return v
	}
}

func EncodeTuple6[A, B, C, D, E, F any](
	a func(*Encoder, A),
	b func(*Encoder, B),
	c func(*Encoder, C),
	d func(*Encoder, D),
	e func(*Encoder, E),
	f func(*Encoder, F),
) func(*Encoder, Tuple6[A, B, C, D, E, F]) {
	return func(w *Encoder, v Tuple6[A, B, C, D, E, F]) {
		a(w, v.F0)
		b(w, v.F1)
		c(w, v.F2)
		d(w, v.F3)
		e(w, v.F4)
		f(w, v.F5)
	}
}

func DecodeTuple6[A, B, C, D, E, F any](
	a func(*Decoder) A,
	b func(*Decoder) B,
	c func(*Decoder) C,
	d func(*Decoder) D,
	e func(*Decoder) E,
	f func(*Decoder) F,
) func(*Decoder) Tuple6[A, B, C, D, E, F] {
	return func(r *Decoder) (v Tuple6[A, B, C, D, E, F]) {
		v.F0 = a(r)
		v.F1 = b(r)
		v.F2 = c(r)
		v.F3 = d(r)
		v.F4 = e(r)
		v.F5 = f(r)
		return v
	}
}
