package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/domain/repo/mock"
	"github.com/pterobot/pterobot/internal/domain/repo/settings"
)

var errStore = errors.New("store unavailable")

func newRepo(t *testing.T) (settings.Repo, *mock.MockDocument, *prometheus.Registry) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocument(ctrl)
	registry := prometheus.NewPedanticRegistry()

	repo, err := settings.NewRepo(store, registry)
	require.NoError(t, err)

	return repo, store, registry
}

func TestReadNeverFails(t *testing.T) {
	repo, store, _ := newRepo(t)

	store.EXPECT().ReadDocument(gomock.Any(), settings.NamespaceMonitorState).Return(nil, errStore)

	state := repo.GetMonitorState(context.Background())
	assert.NotNil(t, state)
	assert.Empty(t, state)
}

func TestWriteIsBestEffort(t *testing.T) {
	repo, store, registry := newRepo(t)

	store.EXPECT().WriteDocument(gomock.Any(), settings.NamespaceMonitorState, entity.Document{"a": "online"}).Return(errStore)

	repo.SaveMonitorState(context.Background(), entity.MonitorState{"a": entity.StatusOnline})

	count, err := testutil.GatherAndCount(registry, "pterobot_store_write_error_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMonitorStateDropsInvalidEntries(t *testing.T) {
	repo, store, _ := newRepo(t)

	store.EXPECT().ReadDocument(gomock.Any(), settings.NamespaceMonitorState).Return(entity.Document{
		"a": "online",
		"b": float64(1),
		"c": "",
	}, nil)

	assert.Equal(t, entity.MonitorState{"a": entity.StatusOnline}, repo.GetMonitorState(context.Background()))
}

func TestSetChannelKeepsOtherGuilds(t *testing.T) {
	repo, store, _ := newRepo(t)

	gomock.InOrder(
		store.EXPECT().ReadDocument(gomock.Any(), settings.NamespaceMonitorConfig).Return(entity.Document{"guild-1": "channel-1"}, nil),
		store.EXPECT().WriteDocument(gomock.Any(), settings.NamespaceMonitorConfig, entity.Document{"guild-1": "channel-1", "guild-2": "channel-2"}).Return(nil),
	)

	repo.SetChannel(context.Background(), "guild-2", "channel-2")
}

func TestSetChannelSkipsWriteOnReadFailure(t *testing.T) {
	repo, store, _ := newRepo(t)

	store.EXPECT().ReadDocument(gomock.Any(), settings.NamespaceMonitorConfig).Return(nil, errStore)
	store.EXPECT().WriteDocument(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	repo.SetChannel(context.Background(), "guild-2", "channel-2")
}

func TestAdminRole(t *testing.T) {
	repo, store, _ := newRepo(t)

	store.EXPECT().ReadDocument(gomock.Any(), settings.NamespaceAdminConfig).Return(entity.Document{"guild-1": "role-1"}, nil).Times(2)

	assert.Equal(t, "role-1", repo.GetAdminRole(context.Background(), "guild-1"))
	assert.Empty(t, repo.GetAdminRole(context.Background(), "guild-2"))
}
