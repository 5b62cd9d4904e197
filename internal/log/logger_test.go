package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/log"
)

func TestInit(t *testing.T) {
	require.NoError(t, log.Init(config.Logs{Level: 1, Encoder: config.EncoderTypeJson}))
	assert.True(t, log.Logger().V(1).Enabled())
	assert.False(t, log.Logger().V(2).Enabled())

	require.NoError(t, log.Init(config.Logs{Level: 0, Encoder: config.EncoderTypeConsole}))
	assert.False(t, log.Logger().V(1).Enabled())
}

func TestInitUnknownEncoder(t *testing.T) {
	assert.Error(t, log.Init(config.Logs{Encoder: "xml"}))
}
