package config

import "time"

type Config struct {
	GracefulDuration time.Duration
	Metrics          Metrics
	Logs             Logs
	Panel            Panel
	Discord          Discord
	Auth             Auth
	Monitor          Monitor
	Store            Store
	Events           Events
}

type Metrics struct {
	Port int
}

type Logs struct {
	Level   int
	Encoder EncoderType
}

type EncoderType string

const (
	EncoderTypeJson    EncoderType = "json"
	EncoderTypeConsole EncoderType = "console"
)

type Panel struct {
	Host    string
	Timeout time.Duration
	// Debug logs every endpoint attempt
	Debug bool
	Creds PanelCreds
}

type PanelCreds struct {
	ApplicationKey string
	// ClientKey falls back to ApplicationKey when empty
	ClientKey string
}

func (c PanelCreds) String() string {
	switch {
	case c.ApplicationKey != "" && c.ClientKey != "":
		return "application and client keys set"
	case c.ApplicationKey != "":
		return "application key set"
	default:
		return "no key"
	}
}

type Discord struct {
	ClientID string
	// GuildID restricts command registration to a single guild
	GuildID string
	Creds   DiscordCreds
}

type DiscordCreds struct {
	Token string
}

func (c DiscordCreds) String() string {
	if c.Token != "" {
		return "token set"
	}

	return "no token"
}

type Auth struct {
	AllowedUserIDs []string
	AdminRoleID    string
}

type Monitor struct {
	Period        time.Duration
	Concurrency   int
	SlowThreshold time.Duration
	Retry         Retry
}

type Retry struct {
	MaxAttempt uint
	Delay      time.Duration
	MaxDelay   time.Duration
}

type StoreBackend string

const (
	StoreBackendBadger StoreBackend = "badger"
	StoreBackendValkey StoreBackend = "valkey"
	StoreBackendS3     StoreBackend = "s3"
)

type Store struct {
	Backend StoreBackend
	Badger  Badger
	Valkey  Valkey
	S3      S3
}

type Badger struct {
	Path string
}

type S3 struct {
	Bucket       string
	KeyPrefix    string
	BaseEndpoint string
	Region       string
	UsePathStyle bool
	Creds        AWSCreds
}

type AWSCreds struct {
	AccessKeyID     string
	SecretAccessKey string
}

func (c AWSCreds) String() string {
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		return "creds set"
	}

	return "no creds"
}

type Valkey struct {
	URL   string
	Creds ValkeyCreds
}

type ValkeyCreds struct {
	Password string
}

func (c ValkeyCreds) String() string {
	if c.Password != "" {
		return "password set"
	}

	return "no password"
}

// Events configures the optional change-event sinks. An empty URL disables a sink.
type Events struct {
	NATS  NATS
	Kafka Kafka
}

type NATS struct {
	URL     string
	Subject string
	Creds   NATSCreds
}

type NATSCreds struct {
	Token string
}

func (c NATSCreds) String() string {
	if c.Token != "" {
		return "token set"
	}

	return "no token"
}

type Kafka struct {
	Broker KafkaBroker
	Topic  string
}

type KafkaBroker struct {
	URLs    string
	Version string
	Creds   KafkaCreds
}

type SASLMechanism string

const (
	SASLMechanismNone        SASLMechanism = ""
	SASLMechanismPlain       SASLMechanism = "PLAIN"
	SASLMechanismSCRAMSHA256 SASLMechanism = "SCRAM-SHA-256"
	SASLMechanismSCRAMSHA512 SASLMechanism = "SCRAM-SHA-512"
)

type KafkaCreds struct {
	Mechanism SASLMechanism
	User      string
	Password  string
}

func (c KafkaCreds) String() string {
	if c.Mechanism == SASLMechanismNone {
		return "no sasl"
	}

	return string(c.Mechanism) + " user " + c.User
}
