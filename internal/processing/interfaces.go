package processing

import (
	"context"
	"net/url"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_processing.go

// StatusPoller is the part of the panel client used by the monitor.
type StatusPoller interface {
	ListServers(ctx context.Context, filters url.Values) ([]entity.Document, error)
	// GetStatus never fails, an unreachable server is unknown.
	GetStatus(ctx context.Context, id string) entity.StatusResult
}
