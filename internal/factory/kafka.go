package factory

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
)

func CreateKafkaProducer(kafkaConfig config.Kafka) (sarama.SyncProducer, common.CloseFunc, error) {
	conf := sarama.NewConfig()

	// mandatory configuration for sync producers
	conf.Producer.Return.Successes = true
	conf.Producer.Return.Errors = true

	conf.Producer.RequiredAcks = sarama.WaitForAll
	conf.Producer.Partitioner = sarama.NewHashPartitioner

	// clientID
	conf.ClientID = computeClientID(kafkaConfig.Topic)

	// kafka version
	version, err := sarama.ParseKafkaVersion(kafkaConfig.Broker.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse kafka version: %w", err)
	}

	conf.Version = version

	err = configureSASL(conf, kafkaConfig.Broker.Creds)
	if err != nil {
		return nil, nil, err
	}

	// Kafka URLs
	urls := strings.Split(kafkaConfig.Broker.URLs, ",")

	ret, err := sarama.NewSyncProducer(urls, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	shutdown := func(context.Context) error {
		return ret.Close()
	}

	return ret, shutdown, nil
}

func configureSASL(conf *sarama.Config, creds config.KafkaCreds) error {
	switch creds.Mechanism {
	case config.SASLMechanismNone:
		return nil
	case config.SASLMechanismPlain:
		conf.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	case config.SASLMechanismSCRAMSHA256:
		conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: sha256.New}
		}
	case config.SASLMechanismSCRAMSHA512:
		conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
		conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: sha512.New}
		}
	default:
		return fmt.Errorf("unsupported sasl mechanism %q", creds.Mechanism)
	}

	conf.Net.SASL.Enable = true
	conf.Net.SASL.User = creds.User
	conf.Net.SASL.Password = creds.Password

	return nil
}

func computeClientID(topic string) string {
	prefix, err := os.Hostname()
	if err != nil {
		prefix = fmt.Sprintf("clientid-%v", topic)
	}

	return fmt.Sprintf("%s-%x", prefix, rand.Int31())
}

// scramClient implements sarama.SCRAMClient
type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	scram.HashGeneratorFcn
}

func (x *scramClient) Begin(userName, password, authzID string) error {
	client, err := x.HashGeneratorFcn.NewClient(userName, password, authzID)
	if err != nil {
		return fmt.Errorf("failed to create scram client: %w", err)
	}

	x.Client = client
	x.ClientConversation = client.NewConversation()

	return nil
}

func (x *scramClient) Step(challenge string) (string, error) {
	return x.ClientConversation.Step(challenge)
}

func (x *scramClient) Done() bool {
	return x.ClientConversation.Done()
}
