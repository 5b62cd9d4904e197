package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

// Event is the json payload published on the event sinks.
type Event struct {
	ID         string    `json:"id"`
	ServerID   string    `json:"server_id"`
	ServerName string    `json:"server_name,omitempty"`
	Node       string    `json:"node,omitempty"`
	Previous   string    `json:"previous"`
	Current    string    `json:"current"`
	GuildID    string    `json:"guild_id"`
	ChannelID  string    `json:"channel_id"`
	ObservedAt time.Time `json:"observed_at"`
}

func newEvent(notification entity.Notification) Event {
	change := notification.Change

	return Event{
		ID:         uuid.NewString(),
		ServerID:   change.Server.ID(),
		ServerName: change.Server.Name,
		Node:       change.Server.Node,
		Previous:   string(change.Previous),
		Current:    string(change.Current),
		GuildID:    notification.GuildID,
		ChannelID:  notification.ChannelID,
		ObservedAt: change.ObservedAt.UTC(),
	}
}

func marshalEvent(notification entity.Notification) (Event, []byte, error) {
	event := newEvent(notification)

	data, err := json.Marshal(event)
	if err != nil {
		return event, nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return event, data, nil
}
