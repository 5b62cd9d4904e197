package factory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IBM/sarama"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/pkg/pipeline"
)

func TestCreateDocumentStoreBadger(t *testing.T) {
	ctx := context.Background()

	store, closeFunc, err := CreateDocumentStore(ctx, config.Store{
		Backend: config.StoreBackendBadger,
		Badger:  config.Badger{Path: t.TempDir()},
	})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, closeFunc(ctx))
	}()

	doc, err := store.ReadDocument(ctx, "monitor-state")
	require.NoError(t, err)
	assert.Empty(t, doc)

	err = store.WriteDocument(ctx, "monitor-state", entity.Document{"a": "online"})
	require.NoError(t, err)

	doc, err = store.ReadDocument(ctx, "monitor-state")
	require.NoError(t, err)
	assert.Equal(t, entity.Document{"a": "online"}, doc)
}

func TestCreateDocumentStoreUnknownBackend(t *testing.T) {
	_, _, err := CreateDocumentStore(context.Background(), config.Store{Backend: "sqlite"})
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestConfigureSASL(t *testing.T) {
	tcs := []struct {
		name      string
		creds     config.KafkaCreds
		enabled   bool
		mechanism sarama.SASLMechanism
		expectErr bool
	}{
		{name: "none"},
		{name: "plain", creds: config.KafkaCreds{Mechanism: config.SASLMechanismPlain, User: "u", Password: "p"}, enabled: true, mechanism: sarama.SASLTypePlaintext},
		{name: "scram 256", creds: config.KafkaCreds{Mechanism: config.SASLMechanismSCRAMSHA256, User: "u", Password: "p"}, enabled: true, mechanism: sarama.SASLTypeSCRAMSHA256},
		{name: "scram 512", creds: config.KafkaCreds{Mechanism: config.SASLMechanismSCRAMSHA512, User: "u", Password: "p"}, enabled: true, mechanism: sarama.SASLTypeSCRAMSHA512},
		{name: "unsupported", creds: config.KafkaCreds{Mechanism: "GSSAPI"}, expectErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			conf := sarama.NewConfig()

			err := configureSASL(conf, tc.creds)
			if tc.expectErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.enabled, conf.Net.SASL.Enable)

			if !tc.enabled {
				return
			}

			assert.Equal(t, tc.mechanism, conf.Net.SASL.Mechanism)
			assert.Equal(t, "u", conf.Net.SASL.User)

			if conf.Net.SASL.SCRAMClientGeneratorFunc != nil {
				client := conf.Net.SASL.SCRAMClientGeneratorFunc()
				require.NoError(t, client.Begin("u", "p", ""))

				first, err := client.Step("")
				require.NoError(t, err)
				assert.Contains(t, first, "n=u")
			}
		})
	}
}

func TestPrometheusServer(t *testing.T) {
	registry, err := CreateRegistry()
	require.NoError(t, err)

	_, err = DecorateErrorProcessing(noopErrorProcessing{}, registry, clockwork.NewRealClock())
	require.NoError(t, err)

	server := CreatePrometheusServer(config.Metrics{Port: 7777}, registry)
	assert.Equal(t, ":7777", server.Addr)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pterobot_build_info")

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDecoratorsRegisterOnce(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := DecorateNotifier(noopNotifier{}, []pipeline.Processing[entity.Notification]{noopNotifier{}}, registry, config.Retry{MaxAttempt: 1})
	require.NoError(t, err)

	_, err = DecorateNotifier(noopNotifier{}, nil, registry, config.Retry{MaxAttempt: 1})
	assert.ErrorContains(t, err, "failed to register metric")
}

type noopErrorProcessing struct{}

func (noopErrorProcessing) Process(context.Context, pipeline.ErrProcessingError) error {
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Process(context.Context, entity.Notification) error {
	return nil
}
