package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterobot/pterobot/internal/config"
)

func TestParseDefaults(t *testing.T) {
	viper.Reset()

	conf, err := config.Parse("")
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, conf.Monitor.Period)
	assert.Equal(t, 4, conf.Monitor.Concurrency)
	assert.Equal(t, 15*time.Second, conf.Panel.Timeout)
	assert.Equal(t, config.StoreBackendBadger, conf.Store.Backend)
	assert.Equal(t, config.EncoderTypeConsole, conf.Logs.Encoder)
	assert.EqualValues(t, 3, conf.Monitor.Retry.MaxAttempt)
}

func TestParseLegacyEnv(t *testing.T) {
	viper.Reset()

	t.Setenv("PTERODACTYL_HOST", "https://panel.example.com")
	t.Setenv("PTERODACTYL_API_KEY", "ptla_secret")
	t.Setenv("PTERO_DEBUG", "true")
	t.Setenv("DISCORD_TOKEN", "discord-secret")
	t.Setenv("DISCORD_CLIENT_ID", "42")
	t.Setenv("ALLOWED_USER_IDS", "1,2,3")
	t.Setenv("ADMIN_ROLE_ID", "99")

	conf, err := config.Parse("")
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com", conf.Panel.Host)
	assert.Equal(t, "ptla_secret", conf.Panel.Creds.ApplicationKey)
	assert.Empty(t, conf.Panel.Creds.ClientKey)
	assert.True(t, conf.Panel.Debug)
	assert.Equal(t, "discord-secret", conf.Discord.Creds.Token)
	assert.Equal(t, "42", conf.Discord.ClientID)
	assert.Equal(t, []string{"1", "2", "3"}, conf.Auth.AllowedUserIDs)
	assert.Equal(t, "99", conf.Auth.AdminRoleID)

	assert.Equal(t, 2, conf.Logs.Level, "debug raises the log level")
}

func TestParsePrefixedEnvWins(t *testing.T) {
	viper.Reset()

	t.Setenv("PTERODACTYL_HOST", "https://legacy.example.com")
	t.Setenv("PTEROBOT_PANEL_HOST", "https://panel.example.com")
	t.Setenv("PTEROBOT_MONITOR_PERIOD", "2m")

	conf, err := config.Parse("")
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com", conf.Panel.Host)
	assert.Equal(t, 2*time.Minute, conf.Monitor.Period)
}

func TestParseFile(t *testing.T) {
	viper.Reset()

	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logs:
  level: 3
  encoder: json
store:
  backend: valkey
  valkey:
    url: localhost:6379
events:
  nats:
    url: nats://localhost:4222
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	conf, err := config.Parse(file)
	require.NoError(t, err)

	assert.Equal(t, 3, conf.Logs.Level)
	assert.Equal(t, config.EncoderTypeJson, conf.Logs.Encoder)
	assert.Equal(t, config.StoreBackendValkey, conf.Store.Backend)
	assert.Equal(t, "localhost:6379", conf.Store.Valkey.URL)
	assert.Equal(t, "nats://localhost:4222", conf.Events.NATS.URL)
	assert.Equal(t, "pterobot.status", conf.Events.NATS.Subject)
}

func TestParseMissingFile(t *testing.T) {
	viper.Reset()

	_, err := config.Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCredsAreHidden(t *testing.T) {
	creds := config.PanelCreds{ApplicationKey: "ptla_secret", ClientKey: "ptlc_secret"}
	assert.NotContains(t, creds.String(), "secret")

	discord := config.DiscordCreds{Token: "secret"}
	assert.NotContains(t, discord.String(), "secret")

	kafka := config.KafkaCreds{Mechanism: config.SASLMechanismSCRAMSHA512, User: "bot", Password: "secret"}
	assert.NotContains(t, kafka.String(), "secret")
}
