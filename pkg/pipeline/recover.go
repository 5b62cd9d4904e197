package pipeline

import (
	"context"
	"fmt"
)

// Panic handler Processing

type panicHandler[Payload any] struct {
	processing Processing[Payload]
}

func NewPanicHandlerProcessing[Payload any](p Processing[Payload]) Processing[Payload] {
	return panicHandler[Payload]{
		processing: p,
	}
}

func (p panicHandler[Payload]) Process(ctx context.Context, payload Payload) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = NewErrProcessingError(
				fmt.Errorf("unexpected error: %v", r),
				PanicCategory,
				nil,
			)
		}
	}()

	err = p.processing.Process(ctx, payload)

	return
}
