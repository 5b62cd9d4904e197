package settings

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/domain/repo"
)

const (
	NamespaceMonitorState  = "monitor-state"
	NamespaceMonitorConfig = "monitor-config"
	NamespaceAdminConfig   = "admin-config"
)

// Repo is a best-effort view over a document store: reads never fail and writes never return errors.
// Failures are logged and counted.
type Repo struct {
	store repo.Document

	writeErrors *prometheus.CounterVec

	logger *logr.Logger
}

func NewRepo(store repo.Document, registry prometheus.Registerer) (Repo, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pterobot",
		Subsystem: "store",
		Name:      "write_error_total",
		Help:      "Failed config store writes by namespace.",
	}, []string{"namespace"})

	err := registry.Register(counter)
	if err != nil {
		return Repo{}, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := Repo{
		store:       store,
		writeErrors: counter,
	}

	return ret, nil
}

func (r Repo) WithLogger(logger logr.Logger) Repo {
	r.logger = &logger

	return r
}

// Read returns an empty document when the namespace is absent or unreadable.
func (r Repo) Read(ctx context.Context, namespace string) entity.Document {
	doc, err := r.store.ReadDocument(ctx, namespace)
	if err != nil {
		r.logError(err, "Failed to read config store, using an empty document", "namespace", namespace)

		return entity.Document{}
	}

	if doc == nil {
		return entity.Document{}
	}

	return doc
}

// Write overwrites the whole namespace.
func (r Repo) Write(ctx context.Context, namespace string, doc entity.Document) {
	err := r.store.WriteDocument(ctx, namespace, doc)
	if err != nil {
		r.writeErrors.WithLabelValues(namespace).Inc()
		r.logError(err, "Failed to write config store", "namespace", namespace)

		return
	}

	r.logInfo(2, "Config store written", "namespace", namespace, "entries", len(doc))
}

func (r Repo) GetMonitorState(ctx context.Context) entity.MonitorState {
	doc := r.Read(ctx, NamespaceMonitorState)

	ret := make(entity.MonitorState, len(doc))
	for id, value := range stringEntries(doc) {
		ret[id] = entity.Status(value)
	}

	return ret
}

func (r Repo) SaveMonitorState(ctx context.Context, state entity.MonitorState) {
	doc := make(entity.Document, len(state))
	for id, status := range state {
		doc[id] = string(status)
	}

	r.Write(ctx, NamespaceMonitorState, doc)
}

func (r Repo) GetChannels(ctx context.Context) entity.ChannelMap {
	return entity.ChannelMap(stringEntries(r.Read(ctx, NamespaceMonitorConfig)))
}

func (r Repo) SetChannel(ctx context.Context, guildID, channelID string) {
	r.update(ctx, NamespaceMonitorConfig, guildID, channelID)
}

func (r Repo) GetAdminRole(ctx context.Context, guildID string) string {
	return stringEntries(r.Read(ctx, NamespaceAdminConfig))[guildID]
}

func (r Repo) SetAdminRole(ctx context.Context, guildID, roleID string) {
	r.update(ctx, NamespaceAdminConfig, guildID, roleID)
}

// update sets a single key. The write is skipped when the current document cannot be read,
// so that a transient read failure never erases the other keys.
func (r Repo) update(ctx context.Context, namespace, key, value string) {
	doc, err := r.store.ReadDocument(ctx, namespace)
	if err != nil {
		r.writeErrors.WithLabelValues(namespace).Inc()
		r.logError(err, "Failed to read config store before update, skipping write", "namespace", namespace, "key", key)

		return
	}

	if doc == nil {
		doc = entity.Document{}
	}

	doc[key] = value

	r.Write(ctx, namespace, doc)
}

// stringEntries drops the entries that are not strings.
func stringEntries(doc entity.Document) map[string]string {
	ret := make(map[string]string, len(doc))

	for key, value := range doc {
		str, ok := value.(string)
		if !ok || str == "" {
			continue
		}

		ret[key] = str
	}

	return ret
}

func (r Repo) logInfo(level int, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.V(level).Info(msg, keysAndValues...)
}

func (r Repo) logError(err error, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.Error(err, msg, keysAndValues...)
}
