package pipeline

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel Processing
//
// All processings get the payload, the first error cancels the others.

type parallel[Payload any] struct {
	procs []Processing[Payload]
}

func NewParallelProcessing[Payload any](p ...Processing[Payload]) Processing[Payload] {
	return parallel[Payload]{
		procs: p,
	}
}

func (p parallel[Payload]) Process(ctx context.Context, payload Payload) error {
	group, ctx := errgroup.WithContext(ctx)

	for _, proc := range p.procs {
		processing := proc

		group.Go(func() error {
			return processing.Process(ctx, payload)
		})
	}

	return group.Wait()
}

// FanOut Processing
//
// Best effort: every processing runs to completion, errors are joined.

type fanOut[Payload any] struct {
	procs []Processing[Payload]
}

func NewFanOutProcessing[Payload any](p ...Processing[Payload]) Processing[Payload] {
	return fanOut[Payload]{
		procs: p,
	}
}

func (f fanOut[Payload]) Process(ctx context.Context, payload Payload) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, proc := range f.procs {
		processing := proc

		wg.Add(1)

		go func() {
			defer wg.Done()

			err := processing.Process(ctx, payload)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	return errors.Join(errs...)
}
