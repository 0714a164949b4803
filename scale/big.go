package scale

import (
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
)

// Integers wider than 64 bits are kept in a uint256.Int.
// Its words are little-endian which matches SCALE's
// byte order, so encoding copies the low words.
// Signed variants hold the two's complement.
type (
	U128 uint256.Int
	I128 uint256.Int
	U256 uint256.Int
	I256 uint256.Int
)

func NewU128(v uint64) U128 { return U128{v} }
func NewU256(v uint64) U256 { return U256{v} }

func NewI128(v int64) I128 {
	if v < 0 {
		return I128{uint64(v), ^uint64(0)}
	}
	return I128{uint64(v)}
}

func NewI256(v int64) I256 {
	if v < 0 {
		m := ^uint64(0)
		return I256{uint64(v), m, m, m}
	}
	return I256{uint64(v)}
}

// U128From truncates i to its low 128 bits.
func U128From(i *uint256.Int) U128 {
	return U128{i[0], i[1]}
}

func (u U128) Int() *uint256.Int {
	i := uint256.Int(u)
	return &i
}

func (u U256) Int() *uint256.Int {
	i := uint256.Int(u)
	return &i
}

func (u U128) String() string { return u.Int().Dec() }
func (u U256) String() string { return u.Int().Dec() }

func (i I128) Big() *big.Int { return signed(uint256.Int(i), 128) }
func (i I256) Big() *big.Int { return signed(uint256.Int(i), 256) }

func (i I128) String() string { return i.Big().String() }
func (i I256) String() string { return i.Big().String() }

func signed(u uint256.Int, bits uint) *big.Int {
	var b *big.Int
	if bits == 128 {
		u[2], u[3] = 0, 0
	}
	b = u.ToBig()
	if b.Bit(int(bits)-1) == 1 {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	return b
}

func putWords(e *Encoder, w []uint64) {
	for i := range w {
		e.buf = binary.LittleEndian.AppendUint64(e.buf, w[i])
	}
}

func getWords(d *Decoder, w []uint64) {
	b := d.Next(8 * len(w))
	if b == nil {
		return
	}
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
}

func EncodeU128(e *Encoder, v U128) { putWords(e, v[:2]) }
func EncodeI128(e *Encoder, v I128) { putWords(e, v[:2]) }
func EncodeU256(e *Encoder, v U256) { putWords(e, v[:]) }
func EncodeI256(e *Encoder, v I256) { putWords(e, v[:]) }

func DecodeU128(d *Decoder) (v U128) {
	getWords(d, v[:2])
	return v
}

func DecodeI128(d *Decoder) (v I128) {
	getWords(d, v[:2])
	return v
}

func DecodeU256(d *Decoder) (v U256) {
	getWords(d, v[:])
	return v
}

func DecodeI256(d *Decoder) (v I256) {
	getWords(d, v[:])
	return v
}
