package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
	"kr.dev/diff"

	"github.com/indexsupply/inkwrap/ink"
	"github.com/indexsupply/inkwrap/scale"
	"github.com/indexsupply/inkwrap/tc"
	"github.com/indexsupply/inkwrap/wctx"
)

type execResult struct {
	flags    uint32
	data     []byte
	debug    string
	dispatch []byte
}

func (r execResult) encode() []byte {
	e := scale.NewEncoder(nil)
	for i := 0; i < 4; i++ { // gas consumed and required
		scale.EncodeCompact(e, scale.NewCompact(uint64(1000*i)))
	}
	e.Byte(1) // Charge
	scale.EncodeU128(e, scale.NewU128(42))
	scale.EncodeString(e, r.debug)
	if r.dispatch != nil {
		e.Byte(1)
		e.Write(r.dispatch)
		return e.Bytes()
	}
	e.Byte(0)
	scale.EncodeU32(e, r.flags)
	scale.EncodeBytes(e, r.data)
	e.Byte(0) // events: None
	return e.Bytes()
}

type stateCall struct {
	origin ink.AccountID
	dest   ink.AccountID
	value  scale.U128
	input  []byte
}

func decodeStateCall(tb testing.TB, s string) stateCall {
	b, err := hexutil.Decode(s)
	tc.NoErr(tb, err)
	var (
		sc stateCall
		d  = scale.NewDecoder(b)
	)
	sc.origin = ink.DecodeAccountID(d)
	sc.dest = ink.DecodeAccountID(d)
	sc.value = scale.DecodeU128(d)
	diff.Test(tb, tb.Errorf, d.Byte(), byte(0))
	diff.Test(tb, tb.Errorf, d.Byte(), byte(0))
	sc.input = scale.DecodeBytes(d)
	tc.NoErr(tb, d.Err())
	diff.Test(tb, tb.Errorf, d.Remaining(), 0)
	return sc
}

// server responds to state_call with res and
// records the decoded arguments of each request.
func server(tb testing.TB, res execResult, calls *[]stateCall) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		tc.NoErr(tb, err)
		var req struct {
			ID     string   `json:"id"`
			Method string   `json:"method"`
			Params []string `json:"params"`
		}
		tc.NoErr(tb, json.Unmarshal(body, &req))
		diff.Test(tb, tb.Errorf, req.Method, "state_call")
		if len(req.Params) != 2 {
			tb.Fatalf("want 2 params got %d", len(req.Params))
		}
		diff.Test(tb, tb.Errorf, req.Params[0], "ContractsApi_call")
		*calls = append(*calls, decodeStateCall(tb, req.Params[1]))
		tc.NoErr(tb, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  hexutil.Encode(res.encode()),
		}))
	}))
}

func TestCall(t *testing.T) {
	var (
		calls []stateCall
		ret   = scale.Marshal(scale.EncodeU32, 7)
		ts    = server(t, execResult{data: ret}, &calls)
		ctr   uint64
		ctx   = wctx.WithCounter(context.Background(), &ctr)
	)
	defer ts.Close()

	c := New(ts.URL).WithOrigin(ink.AccountID{1})
	call := ink.NewReadCall(ink.AccountID{2}, []byte{0xaa, 0xbb}, scale.DecodeU32).
		WithValue(scale.NewU128(5))
	got, err := ink.Read(ctx, c, call)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got, uint32(7))
	diff.Test(t, t.Errorf, wctx.Counter(ctx), uint64(1))
	diff.Test(t, t.Errorf, calls, []stateCall{{
		origin: ink.AccountID{1},
		dest:   ink.AccountID{2},
		value:  scale.NewU128(5),
		input:  []byte{0xaa, 0xbb},
	}})
}

func TestWithOrigin(t *testing.T) {
	var (
		calls []stateCall
		ts    = server(t, execResult{}, &calls)
		ctx   = context.Background()
	)
	defer ts.Close()

	base := New(ts.URL)
	alice := base.WithOrigin(ink.AccountID{1})
	bob := base.WithOrigin(ink.AccountID{2})
	for _, c := range []*Client{base, alice, bob, base} {
		_, err := c.Call(ctx, ink.CallArgs{})
		tc.NoErr(t, err)
	}
	var got []ink.AccountID
	for _, c := range calls {
		got = append(got, c.origin)
	}
	diff.Test(t, t.Errorf, got, []ink.AccountID{{}, {1}, {2}, {}})
}

func TestCallReverted(t *testing.T) {
	cases := []struct {
		res  execResult
		want []byte
		err  error
	}{
		{
			res:  execResult{flags: revertFlag, data: []byte{1, 1}},
			want: []byte{1, 1},
		},
		{
			res: execResult{flags: revertFlag, debug: "panicked"},
			err: ink.ErrReverted,
		},
		{
			res: execResult{dispatch: []byte{6, 0}},
			err: ink.ErrReverted,
		},
	}
	for _, tt := range cases {
		var calls []stateCall
		ts := server(t, tt.res, &calls)
		got, err := New(ts.URL).Call(context.Background(), ink.CallArgs{})
		ts.Close()
		if tt.err != nil {
			tc.WantErr(t, err, tt.err)
			continue
		}
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, tt.want)
	}
}

func TestDecodeExecResult(t *testing.T) {
	res, err := DecodeExecResult(execResult{
		flags: revertFlag,
		data:  []byte{9},
		debug: "hi",
	}.encode())
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, res.GasConsumed, weight{0, 1000})
	diff.Test(t, t.Errorf, res.GasRequired, weight{2000, 3000})
	diff.Test(t, t.Errorf, res.DebugMsg, "hi")
	diff.Test(t, t.Errorf, res.Flags, uint32(revertFlag))
	diff.Test(t, t.Errorf, res.Data, []byte{9})

	_, err = DecodeExecResult([]byte{0, 0, 0, 0, 7})
	var verr *scale.VariantError
	if !errors.As(err, &verr) {
		t.Fatalf("want VariantError got %v", err)
	}
	diff.Test(t, t.Errorf, verr.Type, "StorageDeposit")

	_, err = DecodeExecResult([]byte{0})
	tc.WantErr(t, err, scale.ErrTooFewBytes)
}

func TestError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		tc.NoErr(t, json.NewDecoder(r.Body).Decode(&req))
		w.Write([]byte(`{"jsonrpc": "2.0", "id": "` + req.ID + `", "error": {"code": -32000, "message": "no runtime api"}}`))
	}))
	defer ts.Close()
	_, err := New(ts.URL).Call(context.Background(), ink.CallArgs{})
	var rerr Error
	if !errors.As(err, &rerr) {
		t.Fatalf("want rpc Error got %v", err)
	}
	diff.Test(t, t.Errorf, rerr, Error{Code: -32000, Message: "no runtime api"})
}

func TestHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream\x00 down"))
	}))
	defer ts.Close()
	_, err := New(ts.URL).Call(context.Background(), ink.CallArgs{})
	tc.WantErrMsg(t, err, "rpc http error: 502 upstream down")
}

func TestContractEvents(t *testing.T) {
	_, err := New("http://unused").ContractEvents(context.Background(), ink.TxInfo{})
	tc.WantErr(t, err, ink.ErrUnsupported)
}
