package scale

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

func EncodeBool(e *Encoder, v bool) {
	if v {
		e.Byte(1)
		return
	}
	e.Byte(0)
}

func DecodeBool(d *Decoder) bool {
	switch b := d.Byte(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		d.Fail(fmt.Errorf("%d: %w", b, ErrBool))
		return false
	}
}

func EncodeU8(e *Encoder, v uint8) { e.Byte(v) }
func DecodeU8(d *Decoder) uint8    { return d.Byte() }
func EncodeI8(e *Encoder, v int8)  { e.Byte(byte(v)) }
func DecodeI8(d *Decoder) int8     { return int8(d.Byte()) }

func EncodeU16(e *Encoder, v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func DecodeU16(d *Decoder) uint16 {
	b := d.Next(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func EncodeU32(e *Encoder, v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func DecodeU32(d *Decoder) uint32 {
	b := d.Next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func EncodeU64(e *Encoder, v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func DecodeU64(d *Decoder) uint64 {
	b := d.Next(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func EncodeI16(e *Encoder, v int16) { EncodeU16(e, uint16(v)) }
func DecodeI16(d *Decoder) int16    { return int16(DecodeU16(d)) }
func EncodeI32(e *Encoder, v int32) { EncodeU32(e, uint32(v)) }
func DecodeI32(d *Decoder) int32    { return int32(DecodeU32(d)) }
func EncodeI64(e *Encoder, v int64) { EncodeU64(e, uint64(v)) }
func DecodeI64(d *Decoder) int64    { return int64(DecodeU64(d)) }

// chars are unicode scalar values stored as a u32
func EncodeChar(e *Encoder, v rune) { EncodeU32(e, uint32(v)) }

func DecodeChar(d *Decoder) rune {
	r := rune(DecodeU32(d))
	if d.Err() == nil && !utf8.ValidRune(r) {
		d.Fail(fmt.Errorf("%#x: %w", uint32(r), ErrChar))
		return 0
	}
	return r
}

// EncodeBytes encodes a Vec<u8>: compact length then the bytes.
func EncodeBytes(e *Encoder, v []byte) {
	EncodeLen(e, len(v))
	e.Write(v)
}

func DecodeBytes(d *Decoder) []byte {
	n := DecodeLen(d)
	b := d.Next(n)
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

func EncodeString(e *Encoder, v string) {
	EncodeLen(e, len(v))
	e.buf = append(e.buf, v...)
}

// DecodeString fails with ErrString unless
// the bytes are valid UTF-8.
func DecodeString(d *Decoder) string {
	b := d.Next(DecodeLen(d))
	if !utf8.Valid(b) {
		d.Fail(fmt.Errorf("%q: %w", b, ErrString))
		return ""
	}
	return string(b)
}

// Unit is the empty tuple.
type Unit struct{}

func EncodeUnit(*Encoder, Unit) {}
func DecodeUnit(*Decoder) Unit  { return Unit{} }
