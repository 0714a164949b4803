// Read-only connection to a node over JSON-RPC
//
// Dry runs use the ContractsApi_call runtime API
// through state_call. Transactions need a signer and
// are not supported.
package rpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/indexsupply/inkwrap/ink"
	"github.com/indexsupply/inkwrap/scale"
	"github.com/indexsupply/inkwrap/wctx"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwrap_rpc_requests_total",
		Help: "JSON-RPC requests by method and outcome",
	}, []string{"method", "status"})

	tracer = otel.Tracer("inkwrap/rpc")
)

func New(url string) *Client {
	return &Client{
		hc: &http.Client{
			Timeout:   10 * time.Second,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		url: url,
	}
}

// Client is safe for concurrent use.
type Client struct {
	hc     *http.Client
	url    string
	origin ink.AccountID
}

// WithOrigin returns a copy of c whose dry runs are
// called by id. The zero account is used otherwise.
func (c *Client) WithOrigin(id ink.AccountID) *Client {
	cp := *c
	cp.origin = id
	return &cp
}

type request struct {
	ID      string `json:"id"`
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e Error) Exists() bool {
	return e.Code != 0
}

func (e Error) Error() string {
	return fmt.Sprintf("code=%d msg=%s", e.Code, e.Message)
}

type response struct {
	ID     string          `json:"id"`
	Error  Error           `json:"error"`
	Result json.RawMessage `json:"result"`
}

func (c *Client) do(ctx context.Context, dest any, method string, params ...any) (err error) {
	id := uuid.NewString()
	ctx = wctx.WithRequestID(wctx.WithBackend(ctx, "rpc"), id)
	ctx, span := tracer.Start(ctx, "rpc "+method)
	span.SetAttributes(
		attribute.String("rpc.method", method),
		attribute.String("rpc.id", id),
	)
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		Requests.WithLabelValues(method, status).Inc()
		span.End()
		slog.DebugContext(ctx, "rpc", "method", method, "status", status)
	}()
	wctx.CounterAdd(ctx, 1)

	var (
		eg   errgroup.Group
		r, w = io.Pipe()
		resp *http.Response
	)
	eg.Go(func() error {
		defer w.Close()
		return json.NewEncoder(w).Encode(request{
			ID:      id,
			Version: "2.0",
			Method:  method,
			Params:  params,
		})
	})
	eg.Go(func() error {
		defer r.Close()
		req, err := http.NewRequestWithContext(ctx, "POST", c.url, r)
		if err != nil {
			return fmt.Errorf("unable to new request: %w", err)
		}
		req.Header.Add("content-type", "application/json")
		resp, err = c.hc.Do(req)
		if err != nil {
			return fmt.Errorf("unable to do http request: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		text := strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return -1
		}, string(b))
		const msg = "rpc http error: %d %.100s"
		return fmt.Errorf(msg, resp.StatusCode, text)
	}
	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("unable to json decode: %w", err)
	}
	if res.Error.Exists() {
		return fmt.Errorf("rpc=%s %w", method, res.Error)
	}
	if res.ID != id {
		return fmt.Errorf("rpc=%s response id %q want %q", method, res.ID, id)
	}
	if err := json.Unmarshal(res.Result, dest); err != nil {
		return fmt.Errorf("rpc=%s decoding result: %w", method, err)
	}
	return nil
}

// flag set in ExecReturnValue when the contract reverted
const revertFlag = 1

type weight struct {
	RefTime   uint64
	ProofSize uint64
}

func decodeWeight(d *scale.Decoder) weight {
	return weight{
		RefTime:   scale.DecodeCompact[uint64](d).Value,
		ProofSize: scale.DecodeCompact[uint64](d).Value,
	}
}

// ExecResult is the part of pallet-contracts'
// ContractExecResult needed to report a dry run.
type ExecResult struct {
	GasConsumed weight
	GasRequired weight
	DebugMsg    string
	Flags       uint32
	Data        []byte

	// Set when the call failed before the contract
	// returned. Holds the encoded DispatchError.
	DispatchError []byte
}

// DecodeExecResult decodes the output of ContractsApi_call.
// Trailing fields (events of newer runtimes) are ignored.
func DecodeExecResult(b []byte) (ExecResult, error) {
	var (
		res ExecResult
		d   = scale.NewDecoder(b)
	)
	res.GasConsumed = decodeWeight(d)
	res.GasRequired = decodeWeight(d)
	switch i := d.Byte(); i {
	case 0, 1: // StorageDeposit Refund, Charge
		scale.DecodeU128(d)
	default:
		d.Fail(&scale.VariantError{Type: "StorageDeposit", Index: i})
	}
	res.DebugMsg = string(scale.DecodeBytes(d))
	switch i := d.Byte(); i {
	case 0:
		res.Flags = scale.DecodeU32(d)
		res.Data = scale.DecodeBytes(d)
	case 1:
		res.DispatchError = d.Next(d.Remaining())
	default:
		d.Fail(&scale.VariantError{Type: "Result", Index: i})
	}
	if err := d.Err(); err != nil {
		return res, fmt.Errorf("decoding exec result: %w", err)
	}
	return res, nil
}

func (c *Client) callArgs(args ink.CallArgs) []byte {
	e := scale.NewEncoder(nil)
	ink.EncodeAccountID(e, c.origin)
	ink.EncodeAccountID(e, args.AccountID)
	scale.EncodeU128(e, args.Value)
	e.Byte(0) // gas limit: None
	e.Byte(0) // storage deposit limit: None
	scale.EncodeBytes(e, args.Data)
	return e.Bytes()
}

// Call dry-runs a message. A revert with data returns
// the data so that the caller decodes the contract's
// error. A revert without data is ink.ErrReverted.
func (c *Client) Call(ctx context.Context, args ink.CallArgs) ([]byte, error) {
	var out string
	err := c.do(ctx, &out, "state_call", "ContractsApi_call", hexutil.Encode(c.callArgs(args)))
	if err != nil {
		return nil, fmt.Errorf("dry run %s: %w", args.AccountID, err)
	}
	b, err := hexutil.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("decoding state_call hex: %w", err)
	}
	res, err := DecodeExecResult(b)
	if err != nil {
		return nil, err
	}
	switch {
	case res.DispatchError != nil:
		return nil, fmt.Errorf("%w: dispatch error %s", ink.ErrReverted, hexutil.Encode(res.DispatchError))
	case res.Flags&revertFlag != 0 && len(res.Data) == 0:
		return nil, fmt.Errorf("%w: %s", ink.ErrReverted, res.DebugMsg)
	case res.Flags&revertFlag != 0:
		slog.DebugContext(ctx, "dry run reverted", "contract", args.AccountID, "n", len(res.Data))
	}
	return res.Data, nil
}

// ContractEvents needs indexed transaction data
// which the node's JSON-RPC API does not provide.
func (c *Client) ContractEvents(context.Context, ink.TxInfo) (ink.ContractEvents, error) {
	return ink.ContractEvents{}, fmt.Errorf("rpc contract events: %w", ink.ErrUnsupported)
}
