// index for context values
package wctx

import (
	"context"
	"sync/atomic"
)

type key int

const (
	metadataKey key = 1
	contractKey key = 2
	backendKey  key = 3
	requestKey  key = 4
	counterKey  key = 5
)

// WithMetadata records the metadata file being compiled
func WithMetadata(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, metadataKey, path)
}

func Metadata(ctx context.Context) string {
	p, _ := ctx.Value(metadataKey).(string)
	return p
}

func WithContract(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contractKey, name)
}

func Contract(ctx context.Context) string {
	name, _ := ctx.Value(contractKey).(string)
	return name
}

// WithBackend names the connection executing calls
// (eg sandbox, rpc)
func WithBackend(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, backendKey, name)
}

func Backend(ctx context.Context) string {
	name, _ := ctx.Value(backendKey).(string)
	return name
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestKey).(string)
	return id
}

func WithCounter(ctx context.Context, c *uint64) context.Context {
	return context.WithValue(ctx, counterKey, c)
}

func CounterAdd(ctx context.Context, n uint64) uint64 {
	cptr, ok := ctx.Value(counterKey).(*uint64)
	if !ok {
		return 0
	}
	return atomic.AddUint64(cptr, n)
}

func Counter(ctx context.Context) uint64 {
	cptr, ok := ctx.Value(counterKey).(*uint64)
	if !ok {
		return 0
	}
	return atomic.LoadUint64(cptr)
}
