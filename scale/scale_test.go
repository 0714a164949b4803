package scale

import (
	"errors"
	"testing"

	"kr.dev/diff"

	"github.com/indexsupply/inkwrap/tc"
)

func TestCompact(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{63, []byte{0xfc}},
		{64, []byte{0x01, 0x01}},
		{16383, []byte{0xfd, 0xff}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{1<<30 - 1, []byte{0xfe, 0xff, 0xff, 0xff}},
		{1 << 30, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
		{1<<64 - 1, []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, c := range cases {
		got := Marshal(EncodeCompact[uint64], NewCompact(c.n))
		diff.Test(t, t.Errorf, got, c.want)

		back, err := Unmarshal(DecodeCompact[uint64], got)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, back.Value, c.n)
	}
}

func TestCompactU128(t *testing.T) {
	v := NewCompact(U128{0, 1})
	b := Marshal(EncodeCompactU128, v)
	want := []byte{0x17, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	diff.Test(t, t.Errorf, b, want)
	got, err := Unmarshal(DecodeCompactU128, b)
	tc.NoErr(t, err)
	tc.WantGot(t, v, got)
}

func TestCompactOverflow(t *testing.T) {
	b := Marshal(EncodeCompact[uint32], NewCompact(uint32(300)))
	_, err := Unmarshal(DecodeCompact[uint8], b)
	if !errors.Is(err, ErrCompact) {
		t.Errorf("want ErrCompact got: %v", err)
	}
}

func TestPrimitives(t *testing.T) {
	var e Encoder
	EncodeU32(&e, 7)
	EncodeBool(&e, true)
	EncodeI16(&e, -2)
	EncodeString(&e, "ink")
	EncodeChar(&e, 'é')
	EncodeU128(&e, NewU128(1))
	diff.Test(t, t.Errorf, e.Bytes(), []byte{
		7, 0, 0, 0,
		1,
		0xfe, 0xff,
		12, 'i', 'n', 'k',
		0xe9, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})

	d := NewDecoder(e.Bytes())
	diff.Test(t, t.Errorf, DecodeU32(d), uint32(7))
	diff.Test(t, t.Errorf, DecodeBool(d), true)
	diff.Test(t, t.Errorf, DecodeI16(d), int16(-2))
	diff.Test(t, t.Errorf, DecodeString(d), "ink")
	diff.Test(t, t.Errorf, DecodeChar(d), 'é')
	diff.Test(t, t.Errorf, DecodeU128(d).String(), "1")
	tc.NoErr(t, d.Err())
	diff.Test(t, t.Errorf, d.Remaining(), 0)
}

func TestSigned(t *testing.T) {
	b := Marshal(EncodeI128, NewI128(-1))
	diff.Test(t, t.Errorf, len(b), 16)
	for i := range b {
		if b[i] != 0xff {
			t.Fatalf("byte %d: %x", i, b[i])
		}
	}
	got, err := Unmarshal(DecodeI128, b)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got.String(), "-1")
	diff.Test(t, t.Errorf, NewI256(-42).String(), "-42")
	diff.Test(t, t.Errorf, NewI256(42).String(), "42")
}

func TestHeader(t *testing.T) {
	sel := []byte{246, 7, 184, 246}
	e := NewEncoder(sel)
	EncodeU32(e, 7)
	diff.Test(t, t.Errorf, e.Bytes(), []byte{246, 7, 184, 246, 7, 0, 0, 0})
	diff.Test(t, t.Errorf, sel, []byte{246, 7, 184, 246})

	// argument order is reflected in the header
	a := NewEncoder(sel)
	EncodeU32(a, 1)
	EncodeBool(a, true)
	b := NewEncoder(sel)
	EncodeBool(b, true)
	EncodeU32(b, 1)
	if string(a.Bytes()) == string(b.Bytes()) {
		t.Errorf("expected different headers")
	}
	diff.Test(t, t.Errorf, b.Bytes(), []byte{246, 7, 184, 246, 1, 1, 0, 0, 0})
}

func TestGeneric(t *testing.T) {
	type pair = Tuple2[uint32, Option[bool]]
	var (
		enc = EncodeSeq(EncodeTuple2(EncodeU32, EncodeOptionBool))
		dec = DecodeSeq(DecodeTuple2(DecodeU32, DecodeOptionBool))
	)
	v := []pair{
		{F0: 1, F1: Some(true)},
		{F0: 2, F1: Some(false)},
		{F0: 3, F1: None[bool]()},
	}
	b := Marshal(enc, v)
	diff.Test(t, t.Errorf, b, []byte{
		12,
		1, 0, 0, 0, 1,
		2, 0, 0, 0, 2,
		3, 0, 0, 0, 0,
	})
	got, err := Unmarshal(dec, b)
	tc.NoErr(t, err)
	tc.WantGot(t, v, got)
}

func TestResult(t *testing.T) {
	enc := EncodeResult(EncodeU32, EncodeU8)
	dec := DecodeResult(DecodeU32, DecodeU8)

	b := Marshal(enc, Ok[uint32, uint8](5))
	diff.Test(t, t.Errorf, b, []byte{0, 5, 0, 0, 0})
	r, err := Unmarshal(dec, b)
	tc.NoErr(t, err)
	v, err := r.Unwrap()
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, v, uint32(5))

	b = Marshal(enc, Err[uint32](uint8(1)))
	diff.Test(t, t.Errorf, b, []byte{1, 1})
	r, err = Unmarshal(dec, b)
	tc.NoErr(t, err)
	if _, err := r.Unwrap(); err == nil {
		t.Errorf("expected error")
	}
}

func TestArray(t *testing.T) {
	var (
		in  = [3]uint16{1, 2, 3}
		out [3]uint16
		e   Encoder
	)
	EncodeArray(&e, EncodeU16, in[:])
	diff.Test(t, t.Errorf, e.Bytes(), []byte{1, 0, 2, 0, 3, 0})
	d := NewDecoder(e.Bytes())
	DecodeArray(d, DecodeU16, out[:])
	tc.NoErr(t, d.Err())
	diff.Test(t, t.Errorf, out, in)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		f    func() error
	}{
		{
			name: "short",
			err:  ErrTooFewBytes,
			f: func() error {
				_, err := Unmarshal(DecodeU32, []byte{1, 2})
				return err
			},
		},
		{
			name: "trailing",
			err:  ErrTooManyBytes,
			f: func() error {
				_, err := Unmarshal(DecodeU8, []byte{1, 2})
				return err
			},
		},
		{
			name: "bool",
			err:  ErrBool,
			f: func() error {
				_, err := Unmarshal(DecodeBool, []byte{2})
				return err
			},
		},
		{
			name: "option",
			err:  ErrOption,
			f: func() error {
				_, err := Unmarshal(DecodeOption(DecodeU8), []byte{3, 1})
				return err
			},
		},
		{
			name: "string",
			err:  ErrString,
			f: func() error {
				_, err := Unmarshal(DecodeString, []byte{4, 0xff})
				return err
			},
		},
		{
			name: "bytes length",
			err:  ErrTooFewBytes,
			f: func() error {
				_, err := Unmarshal(DecodeBytes, []byte{0xfc, 1})
				return err
			},
		},
	}
	for _, c := range cases {
		if err := c.f(); !errors.Is(err, c.err) {
			t.Errorf("%s: want %v got %v", c.name, c.err, err)
		}
	}
}

func TestStickyError(t *testing.T) {
	d := NewDecoder([]byte{1})
	DecodeU32(d)
	d.Fail(errors.New("second"))
	if !errors.Is(d.Err(), ErrTooFewBytes) {
		t.Errorf("want first error got: %v", d.Err())
	}
	diff.Test(t, t.Errorf, DecodeU8(d), uint8(0))
}
