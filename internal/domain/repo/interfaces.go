package repo

import (
	"context"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_repo.go

type DocumentReader interface {
	// ReadDocument returns an empty document when the namespace has never been written.
	ReadDocument(ctx context.Context, namespace string) (entity.Document, error)
}

type DocumentWriter interface {
	WriteDocument(ctx context.Context, namespace string, doc entity.Document) error
}

type Document interface {
	DocumentReader
	DocumentWriter
}

type MonitorStateReader interface {
	GetMonitorState(ctx context.Context) entity.MonitorState
}

type MonitorStateWriter interface {
	SaveMonitorState(ctx context.Context, state entity.MonitorState)
}

type MonitorState interface {
	MonitorStateReader
	MonitorStateWriter
}

type ChannelMapReader interface {
	GetChannels(ctx context.Context) entity.ChannelMap
}

type ChannelMapWriter interface {
	SetChannel(ctx context.Context, guildID, channelID string)
}

type ChannelMap interface {
	ChannelMapReader
	ChannelMapWriter
}

type AdminRoles interface {
	GetAdminRole(ctx context.Context, guildID string) string
	SetAdminRole(ctx context.Context, guildID, roleID string)
}
