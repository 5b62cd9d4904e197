package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

func TestNewRetryableErrProcessingError(t *testing.T) {
	cause := errors.New("connection refused")

	err := common.NewRetryableErrProcessingError(cause, "valkey_client", nil, "failed to get %s", "monitor-state")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, pipeline.ErrRetryableError)
	assert.Equal(t, "valkey_client", err.Category)
	assert.Contains(t, err.Error(), "failed to get monitor-state")
}

func TestCloseAll(t *testing.T) {
	var order []string

	closer := func(name string, err error) common.CloseFunc {
		return func(context.Context) error {
			order = append(order, name)

			return err
		}
	}

	errBadger := errors.New("badger")

	err := common.CloseAll(context.Background(), closer("store", errBadger), nil, closer("nats", nil), closer("discord", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadger)
	assert.Equal(t, []string{"discord", "nats", "store"}, order, "closed in reverse order")
}
