package ink

import (
	"context"
	"errors"
	"testing"

	"kr.dev/diff"

	"github.com/indexsupply/inkwrap/scale"
	"github.com/indexsupply/inkwrap/tc"
)

type testConn struct {
	ret  []byte
	id   AccountID
	args []InstantiateArgs
	exec []ExecCall
}

func (c *testConn) Call(context.Context, CallArgs) ([]byte, error) {
	return c.ret, nil
}

func (c *testConn) ContractEvents(context.Context, TxInfo) (ContractEvents, error) {
	return ContractEvents{}, nil
}

func (c *testConn) Instantiate(_ context.Context, args InstantiateArgs) (AccountID, TxInfo, error) {
	c.args = append(c.args, args)
	return c.id, TxInfo{TxHash: Hash{9}}, nil
}

func (c *testConn) Exec(_ context.Context, call ExecCall) (TxInfo, error) {
	c.exec = append(c.exec, call)
	return TxInfo{}, nil
}

type handle struct{ id AccountID }

func TestRead(t *testing.T) {
	ctx := context.Background()
	conn := &testConn{ret: []byte{0, 7, 0, 0, 0}}
	call := NewReadCall(AccountID{1}, []byte{1, 2, 3, 4}, scale.DecodeResult(scale.DecodeU32, DecodeLangError))
	r, err := Read(ctx, conn, call)
	tc.NoErr(t, err)
	v, err := r.Unwrap()
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, v, uint32(7))

	conn.ret = []byte{0, 7, 0}
	_, err = Read(ctx, conn, call)
	tc.WantErr(t, err, ErrDecode)
}

func TestInstantiate(t *testing.T) {
	ctx := context.Background()
	conn := &testConn{id: AccountID{5}}
	wrap := func(id AccountID) handle { return handle{id} }

	call := NewInstantiateCallNeedsValue(Hash{1}, []byte{0xaa}, wrap).
		WithValue(scale.NewU128(10)).
		WithSalt([]byte("salt")).
		WithTxStatus(InBlock)
	h, tx, err := InstantiateTx(ctx, conn, call)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, h, handle{AccountID{5}})
	diff.Test(t, t.Errorf, tx.TxHash, Hash{9})
	diff.Test(t, t.Errorf, conn.args, []InstantiateArgs{{
		CodeHash: Hash{1},
		Data:     []byte{0xaa},
		Salt:     []byte("salt"),
		Value:    scale.NewU128(10),
		TxStatus: InBlock,
	}})
}

func TestExec(t *testing.T) {
	conn := &testConn{}
	call := NewExecCallNeedsValue(AccountID{3}, []byte{1}).WithValue(scale.NewU128(2))
	_, err := Exec(context.Background(), conn, call.WithTxStatus(Submitted))
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, conn.exec[0].Value, scale.NewU128(2))
	diff.Test(t, t.Errorf, conn.exec[0].TxStatus, Submitted)
	diff.Test(t, t.Errorf, call.Args().Value, scale.NewU128(2))
}

func TestUploadUnsupported(t *testing.T) {
	_, err := Upload(context.Background(), &testConn{}, NewUploadCall([]byte{0}, Hash{}))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("want ErrUnsupported got: %v", err)
	}
}
