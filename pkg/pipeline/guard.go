package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrInFlight is returned by a single flight processing when the previous payload is still processed.
var ErrInFlight = errors.New("previous processing still in flight")

// Single flight Processing
//
// At most one payload is processed at a time, payloads arriving meanwhile are dropped.

type singleFlight[Payload any] struct {
	processing Processing[Payload]
	inFlight   *atomic.Bool
}

func NewSingleFlightProcessing[Payload any](p Processing[Payload]) Processing[Payload] {
	return singleFlight[Payload]{
		processing: p,
		inFlight:   &atomic.Bool{},
	}
}

func (s singleFlight[Payload]) Process(ctx context.Context, payload Payload) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer s.inFlight.Store(false)

	return s.processing.Process(ctx, payload)
}
