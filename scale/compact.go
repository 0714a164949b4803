package scale

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Compact marks an integer that is encoded with the
// variable length compact scheme instead of its
// fixed width layout.
type Compact[T any] struct {
	Value T
}

func NewCompact[T any](v T) Compact[T] { return Compact[T]{Value: v} }

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	single  = 0b00
	two     = 0b01
	four    = 0b10
	bigMode = 0b11
)

func EncodeCompact[T Unsigned](e *Encoder, v Compact[T]) {
	putCompact(e, uint64(v.Value), 0)
}

func DecodeCompact[T Unsigned](d *Decoder) Compact[T] {
	var limit T
	limit--
	lo, hi := getCompact(d)
	if hi != 0 || lo > uint64(limit) {
		d.Fail(fmt.Errorf("%d bits: %w", bits.Len64(uint64(limit)), ErrCompact))
		return Compact[T]{}
	}
	return Compact[T]{Value: T(lo)}
}

func EncodeCompactU128(e *Encoder, v Compact[U128]) {
	putCompact(e, v.Value[0], v.Value[1])
}

func DecodeCompactU128(d *Decoder) Compact[U128] {
	lo, hi := getCompact(d)
	return Compact[U128]{Value: U128{lo, hi}}
}

// EncodeLen writes the compact length prefix
// of sequences, strings and byte vectors.
func EncodeLen(e *Encoder, n int) {
	putCompact(e, uint64(n), 0)
}

func DecodeLen(d *Decoder) int {
	lo, hi := getCompact(d)
	if hi != 0 || lo > 1<<32-1 {
		d.Fail(fmt.Errorf("length: %w", ErrCompact))
		return 0
	}
	return int(lo)
}

func putCompact(e *Encoder, lo, hi uint64) {
	switch {
	case hi == 0 && lo < 1<<6:
		e.Byte(byte(lo<<2) | single)
	case hi == 0 && lo < 1<<14:
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(lo<<2)|two)
	case hi == 0 && lo < 1<<30:
		e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(lo<<2)|four)
	default:
		var b [16]byte
		binary.LittleEndian.PutUint64(b[:8], lo)
		binary.LittleEndian.PutUint64(b[8:], hi)
		n := 16
		for n > 4 && b[n-1] == 0 {
			n--
		}
		e.Byte(byte(n-4)<<2 | bigMode)
		e.Write(b[:n])
	}
}

// Returns the decoded value as low and high 64 bit words.
// Values wider than 128 bits are rejected.
func getCompact(d *Decoder) (uint64, uint64) {
	b0 := d.Byte()
	if d.Err() != nil {
		return 0, 0
	}
	switch b0 & 0b11 {
	case single:
		return uint64(b0 >> 2), 0
	case two:
		b1 := d.Byte()
		return uint64(binary.LittleEndian.Uint16([]byte{b0, b1}) >> 2), 0
	case four:
		rest := d.Next(3)
		if rest == nil {
			return 0, 0
		}
		v := binary.LittleEndian.Uint32([]byte{b0, rest[0], rest[1], rest[2]})
		return uint64(v >> 2), 0
	default:
		n := int(b0>>2) + 4
		if n > 16 {
			d.Fail(fmt.Errorf("%d byte compact: %w", n, ErrCompact))
			return 0, 0
		}
		var b [16]byte
		d.ReadInto(b[:n])
		return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
	}
}
