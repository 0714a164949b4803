package ink

import (
	"fmt"

	"github.com/indexsupply/inkwrap/scale"
)

// TxStatus is how long a connection waits for
// a transaction before returning.
type TxStatus int

const (
	Finalized TxStatus = iota
	InBlock
	Submitted
)

func (s TxStatus) String() string {
	switch s {
	case Finalized:
		return "finalized"
	case InBlock:
		return "in-block"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("TxStatus(%d)", int(s))
	}
}

// TxInfo identifies a transaction. BlockHash is
// zero when the connection only waited for submission.
type TxInfo struct {
	BlockHash Hash
	TxHash    Hash
}

// CallArgs is what a connection needs to dry-run a message.
type CallArgs struct {
	AccountID AccountID
	Data      []byte
	Value     scale.U128
}

// ReadCall is a read-only message call whose
// result decodes into T.
type ReadCall[T any] struct {
	CallArgs
	decode func(*scale.Decoder) T
}

func NewReadCall[T any](id AccountID, data []byte, decode func(*scale.Decoder) T) ReadCall[T] {
	return ReadCall[T]{
		CallArgs: CallArgs{AccountID: id, Data: data},
		decode:   decode,
	}
}

func (c ReadCall[T]) WithValue(v scale.U128) ReadCall[T] {
	c.Value = v
	return c
}

// Decode decodes the data returned by a dry run of c.
func (c ReadCall[T]) Decode(b []byte) (T, error) {
	v, err := scale.Unmarshal(c.decode, b)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// ExecCall is a message call that mutates contract state.
type ExecCall struct {
	AccountID AccountID
	Data      []byte
	Value     scale.U128
	TxStatus  TxStatus
}

func NewExecCall(id AccountID, data []byte) ExecCall {
	return ExecCall{AccountID: id, Data: data}
}

func (c ExecCall) WithTxStatus(s TxStatus) ExecCall {
	c.TxStatus = s
	return c
}

// Args returns the dry run equivalent of c.
func (c ExecCall) Args() CallArgs {
	return CallArgs{AccountID: c.AccountID, Data: c.Data, Value: c.Value}
}

// ExecCallNeedsValue is a call to a payable message.
// It must be given a value with WithValue before it
// can be executed.
type ExecCallNeedsValue struct {
	AccountID AccountID
	Data      []byte
}

func NewExecCallNeedsValue(id AccountID, data []byte) ExecCallNeedsValue {
	return ExecCallNeedsValue{AccountID: id, Data: data}
}

func (c ExecCallNeedsValue) WithValue(v scale.U128) ExecCall {
	return ExecCall{AccountID: c.AccountID, Data: c.Data, Value: v}
}

type InstantiateArgs struct {
	CodeHash Hash
	Data     []byte
	Salt     []byte
	Value    scale.U128
	TxStatus TxStatus
}

// InstantiateCall deploys a contract and yields
// a T (the generated Instance) for its address.
type InstantiateCall[T any] struct {
	InstantiateArgs
	wrap func(AccountID) T
}

func NewInstantiateCall[T any](code Hash, data []byte, wrap func(AccountID) T) InstantiateCall[T] {
	return InstantiateCall[T]{
		InstantiateArgs: InstantiateArgs{CodeHash: code, Data: data},
		wrap:            wrap,
	}
}

// WithSalt sets the bytes mixed into the address of
// the new contract. Instantiating the same code with
// the same data twice requires different salts.
func (c InstantiateCall[T]) WithSalt(salt []byte) InstantiateCall[T] {
	c.Salt = salt
	return c
}

func (c InstantiateCall[T]) WithTxStatus(s TxStatus) InstantiateCall[T] {
	c.TxStatus = s
	return c
}

func (c InstantiateCall[T]) Contract(id AccountID) T {
	return c.wrap(id)
}

// InstantiateCallNeedsValue is a call to a payable
// constructor. WithValue turns it into an InstantiateCall.
type InstantiateCallNeedsValue[T any] struct {
	CodeHash Hash
	Data     []byte
	wrap     func(AccountID) T
}

func NewInstantiateCallNeedsValue[T any](code Hash, data []byte, wrap func(AccountID) T) InstantiateCallNeedsValue[T] {
	return InstantiateCallNeedsValue[T]{CodeHash: code, Data: data, wrap: wrap}
}

func (c InstantiateCallNeedsValue[T]) WithValue(v scale.U128) InstantiateCall[T] {
	call := NewInstantiateCall(c.CodeHash, c.Data, c.wrap)
	call.Value = v
	return call
}

// UploadCall uploads contract code. Connections
// must check that the resulting code hash equals
// ExpectedCodeHash.
type UploadCall struct {
	Code             []byte
	ExpectedCodeHash Hash
	TxStatus         TxStatus
}

func NewUploadCall(code []byte, expected Hash) UploadCall {
	return UploadCall{Code: code, ExpectedCodeHash: expected}
}

func (c UploadCall) WithTxStatus(s TxStatus) UploadCall {
	c.TxStatus = s
	return c
}
