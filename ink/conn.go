package ink

import (
	"context"
	"fmt"
)

// Connection performs read-only operations.
type Connection interface {
	// Call dry-runs a message and returns the
	// encoded value the contract returned.
	Call(ctx context.Context, args CallArgs) ([]byte, error)

	// ContractEvents returns every event emitted
	// by contracts in the transaction tx.
	ContractEvents(ctx context.Context, tx TxInfo) (ContractEvents, error)
}

// SignedConnection performs state changing operations.
type SignedConnection interface {
	Instantiate(ctx context.Context, args InstantiateArgs) (AccountID, TxInfo, error)
	Exec(ctx context.Context, call ExecCall) (TxInfo, error)
}

// UploadConnection is implemented by connections
// that can upload contract code.
type UploadConnection interface {
	Upload(ctx context.Context, call UploadCall) (TxInfo, error)
}

// Read dry-runs call and decodes its result.
func Read[T any](ctx context.Context, conn Connection, call ReadCall[T]) (T, error) {
	b, err := conn.Call(ctx, call.CallArgs)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("reading %s: %w", call.AccountID, err)
	}
	return call.Decode(b)
}

// InstantiateTx deploys a contract and returns its
// generated handle along with the transaction.
func InstantiateTx[T any](ctx context.Context, conn SignedConnection, call InstantiateCall[T]) (T, TxInfo, error) {
	id, tx, err := conn.Instantiate(ctx, call.InstantiateArgs)
	if err != nil {
		var zero T
		return zero, tx, fmt.Errorf("instantiating %s: %w", call.CodeHash, err)
	}
	return call.Contract(id), tx, nil
}

// Instantiate is InstantiateTx without the transaction info.
func Instantiate[T any](ctx context.Context, conn SignedConnection, call InstantiateCall[T]) (T, error) {
	c, _, err := InstantiateTx(ctx, conn, call)
	return c, err
}

func Exec(ctx context.Context, conn SignedConnection, call ExecCall) (TxInfo, error) {
	tx, err := conn.Exec(ctx, call)
	if err != nil {
		return tx, fmt.Errorf("executing %s: %w", call.AccountID, err)
	}
	return tx, nil
}

// Upload uploads contract code when conn implements
// UploadConnection and returns ErrUnsupported otherwise.
func Upload(ctx context.Context, conn SignedConnection, call UploadCall) (TxInfo, error) {
	u, ok := conn.(UploadConnection)
	if !ok {
		return TxInfo{}, fmt.Errorf("upload with %T: %w", conn, ErrUnsupported)
	}
	tx, err := u.Upload(ctx, call)
	if err != nil {
		return tx, fmt.Errorf("uploading %s: %w", call.ExpectedCodeHash, err)
	}
	return tx, nil
}
