package ink

import "fmt"

// ContractEvent is an event as emitted on chain:
// the emitting contract and the encoded event.
type ContractEvent struct {
	Contract AccountID
	Data     []byte
}

type ContractEvents struct {
	Events []ContractEvent
}

// EventSource is implemented by generated Instance types.
type EventSource[E any] interface {
	AccountID() AccountID
	DecodeEvent(data []byte) (E, error)
}

// EventResult holds either a decoded event or the
// reason it could not be decoded. A decoding error
// usually means the bindings are older than the
// deployed contract.
type EventResult[E any] struct {
	Event E
	Err   error
}

// ForContract returns the events emitted by src,
// in emission order, decoded with src's event type.
func ForContract[E any](evs ContractEvents, src EventSource[E]) []EventResult[E] {
	var (
		id  = src.AccountID()
		res []EventResult[E]
	)
	for i := range evs.Events {
		if evs.Events[i].Contract != id {
			continue
		}
		e, err := src.DecodeEvent(evs.Events[i].Data)
		if err != nil {
			err = fmt.Errorf("event %d: %w: %w", i, ErrDecode, err)
		}
		res = append(res, EventResult[E]{Event: e, Err: err})
	}
	return res
}
