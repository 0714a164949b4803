// Types shared by generated contract bindings and the
// connections that execute them.
//
// Generated code only builds request values (ReadCall,
// ExecCall, InstantiateCall, UploadCall). A Connection,
// SignedConnection or UploadConnection turns them into
// dry runs, transactions and uploads.
package ink

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/indexsupply/inkwrap/scale"
)

var (
	ErrUnsupported      = errors.New("operation not supported by connection")
	ErrCodeHashMismatch = errors.New("code hash from upload does not match expected code hash")
	ErrReverted         = errors.New("contract reverted")
	ErrDecode           = errors.New("unable to decode contract data")
	ErrPoisoned         = errors.New("execution context is no longer usable")
)

type AccountID [32]byte

func (a AccountID) String() string { return hexutil.Encode(a[:]) }

func EncodeAccountID(e *scale.Encoder, v AccountID) { e.Write(v[:]) }

func DecodeAccountID(d *scale.Decoder) (v AccountID) {
	d.ReadInto(v[:])
	return v
}

type Hash [32]byte

func (h Hash) String() string { return hexutil.Encode(h[:]) }

func EncodeHash(e *scale.Encoder, v Hash) { e.Write(v[:]) }

func DecodeHash(d *scale.Decoder) (v Hash) {
	d.ReadInto(v[:])
	return v
}

// LangError is the error ink! returns when a message
// cannot be dispatched. It wraps the contract's
// ink_primitives::LangError so that it can be used
// as a Go error.
type LangError uint8

const CouldNotReadInput LangError = 1

func (e LangError) Error() string {
	switch e {
	case CouldNotReadInput:
		return "InkLangError(CouldNotReadInput)"
	default:
		return fmt.Sprintf("InkLangError(Unknown(%d))", uint8(e))
	}
}

func EncodeLangError(e *scale.Encoder, v LangError) { e.Byte(byte(v)) }
func DecodeLangError(d *scale.Decoder) LangError    { return LangError(d.Byte()) }
