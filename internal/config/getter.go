package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	prefix = "PTEROBOT"

	debugLogLevel = 2
)

var conf Config

// legacyEnv lists the environment variables historically read by the bot.
var legacyEnv = map[string]string{
	"panel.host":                 "PTERODACTYL_HOST",
	"panel.creds.applicationKey": "PTERODACTYL_API_KEY",
	"panel.creds.clientKey":      "PTERODACTYL_CLIENT_API_KEY",
	"panel.debug":                "PTERO_DEBUG",
	"discord.creds.token":        "DISCORD_TOKEN",
	"discord.clientID":           "DISCORD_CLIENT_ID",
	"auth.allowedUserIDs":        "ALLOWED_USER_IDS",
	"auth.adminRoleID":           "ADMIN_ROLE_ID",
}

// Parse reads the configuration file given as parameter.
func Parse(confFile string) (*Config, error) {
	conf = Config{}

	setDefault()

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	err := bindLegacyEnv()
	if err != nil {
		return &conf, err
	}

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)

		err := viper.ReadInConfig()
		if err != nil {
			return &conf, fmt.Errorf("failed to read config file %v: %w", confFile, err)
		}
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return &conf, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if conf.Panel.Debug && conf.Logs.Level < debugLogLevel {
		conf.Logs.Level = debugLogLevel
	}

	return &conf, nil
}

// PanelConfig returns panel configuration.
// Passwords and sensitive information should be hidden with by implementing Stringer.
func PanelConfig() Panel {
	return conf.Panel
}

// bindLegacyEnv binds both the prefixed name and the historical name of each key.
// The prefixed name wins when both are set.
func bindLegacyEnv() error {
	replacer := strings.NewReplacer(".", "_")

	for key, env := range legacyEnv {
		prefixed := prefix + "_" + strings.ToUpper(replacer.Replace(key))

		err := viper.BindEnv(key, prefixed, env)
		if err != nil {
			return fmt.Errorf("failed to bind env %v: %w", env, err)
		}
	}

	return nil
}

func setDefault() {
	viper.SetDefault("gracefulDuration", "10s")
	viper.SetDefault("logs.level", 0)
	viper.SetDefault("logs.encoder", EncoderTypeConsole)
	viper.SetDefault("metrics.port", 7777)

	viper.SetDefault("panel.timeout", "15s")

	viper.SetDefault("discord.guildID", "")

	viper.SetDefault("monitor.period", "60s")
	viper.SetDefault("monitor.concurrency", 4)
	viper.SetDefault("monitor.slowThreshold", "30s")
	viper.SetDefault("monitor.retry.maxAttempt", 3)
	viper.SetDefault("monitor.retry.delay", "1s")
	viper.SetDefault("monitor.retry.maxDelay", "10s")

	viper.SetDefault("store.backend", StoreBackendBadger)
	viper.SetDefault("store.badger.path", "data")
	viper.SetDefault("store.valkey.url", "")
	viper.SetDefault("store.valkey.creds.password", "")
	viper.SetDefault("store.s3.bucket", "")
	viper.SetDefault("store.s3.keyPrefix", "pterobot")
	viper.SetDefault("store.s3.baseEndpoint", "")
	viper.SetDefault("store.s3.region", "us-east-1")
	viper.SetDefault("store.s3.usePathStyle", false)
	viper.SetDefault("store.s3.creds.accessKeyID", "")
	viper.SetDefault("store.s3.creds.secretAccessKey", "")

	viper.SetDefault("events.nats.url", "")
	viper.SetDefault("events.nats.subject", "pterobot.status")
	viper.SetDefault("events.nats.creds.token", "")
	viper.SetDefault("events.kafka.broker.urls", "")
	viper.SetDefault("events.kafka.broker.version", "3.6.0")
	viper.SetDefault("events.kafka.broker.creds.mechanism", "")
	viper.SetDefault("events.kafka.broker.creds.user", "")
	viper.SetDefault("events.kafka.broker.creds.password", "")
	viper.SetDefault("events.kafka.topic", "pterobot-status")
}
