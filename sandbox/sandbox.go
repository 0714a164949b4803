// In-process execution of contracts implemented in Go.
//
// A Sandbox implements [ink.Connection], [ink.SignedConnection]
// and [ink.UploadConnection] so that generated bindings can be
// exercised without a node. Contract code is registered as a
// [Factory] under the code hash of its wasm blob.
//
// Every operation is serialized through one mutex. A handler
// that panics poisons the sandbox: the panic is returned as an
// error wrapping [ink.ErrPoisoned] and so is every later call.
package sandbox

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/indexsupply/inkwrap/ink"
	"github.com/indexsupply/inkwrap/isxhash"
	"github.com/indexsupply/inkwrap/scale"
	"github.com/indexsupply/inkwrap/wctx"
)

// Env is the execution environment of one call.
type Env struct {
	Caller   ink.AccountID
	Self     ink.AccountID
	CodeHash ink.Hash
	Value    scale.U128
	DryRun   bool

	events []ink.ContractEvent
}

// Emit records an encoded event. Events are
// kept only when the call succeeds and is
// not a dry run.
func (e *Env) Emit(data []byte) {
	e.events = append(e.events, ink.ContractEvent{
		Contract: e.Self,
		Data:     append([]byte(nil), data...),
	})
}

// Contract is a deployed instance.
//
// Call receives the selector followed by the encoded
// arguments and returns the encoded message result.
// Returning an error reverts the call. Handlers must not
// change state when env.DryRun is set.
type Contract interface {
	Call(env *Env, input []byte) ([]byte, error)
}

// Factory runs a constructor. input is the selector
// followed by the encoded arguments.
type Factory func(env *Env, input []byte) (Contract, error)

// RevertError reverts a call while returning Data.
// A dry run reports Data to the caller as if the
// call succeeded. This is how ink! returns a
// LangError for undecodable input.
type RevertError struct {
	Data []byte
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("reverted with %d bytes", len(e.Data))
}

type Sandbox struct {
	mu       sync.Mutex
	poisoned error

	signer    ink.AccountID
	nonce     uint64
	factories map[ink.Hash]Factory
	code      map[ink.Hash]bool
	contracts map[ink.AccountID]deployed
	events    map[ink.Hash][]ink.ContractEvent
}

type deployed struct {
	code ink.Hash
	c    Contract
}

// New returns an empty sandbox whose transactions
// are signed by signer.
func New(signer ink.AccountID) *Sandbox {
	return &Sandbox{
		signer:    signer,
		factories: map[ink.Hash]Factory{},
		code:      map[ink.Hash]bool{},
		contracts: map[ink.AccountID]deployed{},
		events:    map[ink.Hash][]ink.ContractEvent{},
	}
}

// Register makes f the implementation of the code with
// hash code. The code counts as uploaded.
func (s *Sandbox) Register(code ink.Hash, f Factory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factories[code] = f
	s.code[code] = true
}

// Address derives the account id of a contract the
// same way for every sandbox: the hash of the deployer,
// code hash, constructor input and salt.
func Address(deployer ink.AccountID, code ink.Hash, input, salt []byte) ink.AccountID {
	return ink.AccountID(isxhash.Blake2b256(deployer[:], code[:], input, salt))
}

func (s *Sandbox) tx() ink.TxInfo {
	s.nonce++
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], s.nonce)
	return ink.TxInfo{
		BlockHash: ink.Hash(isxhash.Blake2b256([]byte("block"), b[:])),
		TxHash:    ink.Hash(isxhash.Blake2b256([]byte("tx"), b[:])),
	}
}

// run calls f and turns a panic into a poisoned sandbox.
// s.mu must be held.
func (s *Sandbox) run(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = fmt.Errorf("%w: handler panic: %v", ink.ErrPoisoned, r)
			err = s.poisoned
		}
	}()
	return f()
}

func (s *Sandbox) lock(ctx context.Context) (context.Context, error) {
	s.mu.Lock()
	if s.poisoned != nil {
		s.mu.Unlock()
		return ctx, s.poisoned
	}
	return wctx.WithBackend(ctx, "sandbox"), nil
}

func (s *Sandbox) Call(ctx context.Context, args ink.CallArgs) ([]byte, error) {
	ctx, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	d, ok := s.contracts[args.AccountID]
	if !ok {
		return nil, fmt.Errorf("no contract at %s", args.AccountID)
	}
	env := &Env{
		Caller:   s.signer,
		Self:     args.AccountID,
		CodeHash: d.code,
		Value:    args.Value,
		DryRun:   true,
	}
	var out []byte
	err = s.run(func() error {
		var err error
		out, err = d.c.Call(env, args.Data)
		return err
	})
	slog.DebugContext(ctx, "call",
		"contract", args.AccountID,
		"selector", selector(args.Data),
		"n", len(out),
		"err", err,
	)
	var rerr *RevertError
	switch {
	case errors.Is(err, ink.ErrPoisoned):
		return nil, err
	case errors.As(err, &rerr):
		return rerr.Data, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ink.ErrReverted, err)
	}
	return out, nil
}

func (s *Sandbox) ContractEvents(ctx context.Context, tx ink.TxInfo) (ink.ContractEvents, error) {
	_, err := s.lock(ctx)
	if err != nil {
		return ink.ContractEvents{}, err
	}
	defer s.mu.Unlock()

	evs, ok := s.events[tx.TxHash]
	if !ok {
		return ink.ContractEvents{}, fmt.Errorf("unknown transaction %s", tx.TxHash)
	}
	return ink.ContractEvents{Events: append([]ink.ContractEvent(nil), evs...)}, nil
}

func (s *Sandbox) Instantiate(ctx context.Context, args ink.InstantiateArgs) (ink.AccountID, ink.TxInfo, error) {
	ctx, err := s.lock(ctx)
	if err != nil {
		return ink.AccountID{}, ink.TxInfo{}, err
	}
	defer s.mu.Unlock()

	f, ok := s.factories[args.CodeHash]
	if !ok {
		if s.code[args.CodeHash] {
			return ink.AccountID{}, ink.TxInfo{}, fmt.Errorf("code %s has no registered implementation", args.CodeHash)
		}
		return ink.AccountID{}, ink.TxInfo{}, fmt.Errorf("code %s not uploaded", args.CodeHash)
	}
	id := Address(s.signer, args.CodeHash, args.Data, args.Salt)
	if _, exists := s.contracts[id]; exists {
		return ink.AccountID{}, ink.TxInfo{}, fmt.Errorf("contract exists at %s", id)
	}
	env := &Env{
		Caller:   s.signer,
		Self:     id,
		CodeHash: args.CodeHash,
		Value:    args.Value,
	}
	var c Contract
	err = s.run(func() error {
		var err error
		c, err = f(env, args.Data)
		return err
	})
	slog.DebugContext(ctx, "instantiate",
		"code", args.CodeHash,
		"contract", id,
		"selector", selector(args.Data),
		"status", args.TxStatus,
		"err", err,
	)
	switch {
	case errors.Is(err, ink.ErrPoisoned):
		return ink.AccountID{}, ink.TxInfo{}, err
	case err != nil:
		return ink.AccountID{}, ink.TxInfo{}, fmt.Errorf("%w: %w", ink.ErrReverted, err)
	}
	s.contracts[id] = deployed{code: args.CodeHash, c: c}
	tx := s.tx()
	s.events[tx.TxHash] = env.events
	return id, tx, nil
}

func (s *Sandbox) Exec(ctx context.Context, call ink.ExecCall) (ink.TxInfo, error) {
	ctx, err := s.lock(ctx)
	if err != nil {
		return ink.TxInfo{}, err
	}
	defer s.mu.Unlock()

	d, ok := s.contracts[call.AccountID]
	if !ok {
		return ink.TxInfo{}, fmt.Errorf("no contract at %s", call.AccountID)
	}
	env := &Env{
		Caller:   s.signer,
		Self:     call.AccountID,
		CodeHash: d.code,
		Value:    call.Value,
	}
	err = s.run(func() error {
		_, err := d.c.Call(env, call.Data)
		return err
	})
	slog.DebugContext(ctx, "exec",
		"contract", call.AccountID,
		"selector", selector(call.Data),
		"status", call.TxStatus,
		"events", len(env.events),
		"err", err,
	)
	switch {
	case errors.Is(err, ink.ErrPoisoned):
		return ink.TxInfo{}, err
	case err != nil:
		return ink.TxInfo{}, fmt.Errorf("%w: %w", ink.ErrReverted, err)
	}
	tx := s.tx()
	s.events[tx.TxHash] = env.events
	return tx, nil
}

// Upload stores code after checking that it
// hashes to the expected code hash.
func (s *Sandbox) Upload(ctx context.Context, call ink.UploadCall) (ink.TxInfo, error) {
	ctx, err := s.lock(ctx)
	if err != nil {
		return ink.TxInfo{}, err
	}
	defer s.mu.Unlock()

	h := ink.Hash(isxhash.Blake2b256(call.Code))
	if h != call.ExpectedCodeHash {
		return ink.TxInfo{}, fmt.Errorf("got %s want %s: %w", h, call.ExpectedCodeHash, ink.ErrCodeHashMismatch)
	}
	s.code[h] = true
	slog.DebugContext(ctx, "upload", "code", h, "n", len(call.Code))
	tx := s.tx()
	s.events[tx.TxHash] = nil
	return tx, nil
}

func selector(data []byte) string {
	if len(data) < 4 {
		return hexutil.Encode(data)
	}
	return hexutil.Encode(data[:4])
}
