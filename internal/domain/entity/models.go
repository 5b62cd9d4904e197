package entity

import "time"

// Document is a raw JSON object, either returned by the panel or stored in the config store.
type Document map[string]interface{}

type Status string

const (
	StatusOnline     Status = "online"
	StatusOffline    Status = "offline"
	StatusStarting   Status = "starting"
	StatusStopping   Status = "stopping"
	StatusSuspended  Status = "suspended"
	StatusInstalling Status = "installing"
	StatusBuilt      Status = "built"
	StatusRestricted Status = "restricted"
	StatusUnknown    Status = "unknown"
)

var canonicalStatuses = map[Status]struct{}{
	StatusOnline:     {},
	StatusOffline:    {},
	StatusStarting:   {},
	StatusStopping:   {},
	StatusSuspended:  {},
	StatusInstalling: {},
	StatusBuilt:      {},
	StatusRestricted: {},
	StatusUnknown:    {},
}

// Canonical reports whether s is one of the known statuses.
// Upstream values outside of that set are kept as free-form statuses.
func (s Status) Canonical() bool {
	_, ok := canonicalStatuses[s]

	return ok
}

func (s Status) String() string {
	return string(s)
}

// Server is the normalized view of one panel server. Empty strings mean absent.
type Server struct {
	UUID        string
	Identifier  string
	Name        string
	Status      Status
	Node        string
	Owner       string
	Description string
}

// ID is the server identity: uuid, falling back to the short identifier.
func (s Server) ID() string {
	if s.UUID != "" {
		return s.UUID
	}

	return s.Identifier
}

// Document returns the server as a flat raw document.
func (s Server) Document() Document {
	doc := Document{
		"status": string(s.Status),
	}

	set := func(key, value string) {
		if value != "" {
			doc[key] = value
		}
	}

	set("uuid", s.UUID)
	set("identifier", s.Identifier)
	set("name", s.Name)
	set("node", s.Node)
	set("owner", s.Owner)
	set("description", s.Description)

	return doc
}

// MonitorState maps a server identity to its last observed status.
type MonitorState map[string]Status

// ChannelMap maps a guild id to the channel receiving notifications.
type ChannelMap map[string]string

type ChangeEvent struct {
	Server     Server
	Previous   Status
	Current    Status
	ObservedAt time.Time
}

// Notification is one change delivered to one destination.
type Notification struct {
	Change    ChangeEvent
	GuildID   string
	ChannelID string
}

type MatchType string

const (
	MatchUUID       MatchType = "uuid"
	MatchIdentifier MatchType = "identifier"
	MatchName       MatchType = "name"
)

type Match struct {
	Type MatchType
	ID   string
	Raw  Document
}

type StatusSource string

const (
	SourceClientResources    StatusSource = "client-resources"
	SourceApplicationDetails StatusSource = "application-details"
	SourceNone               StatusSource = "none"
)

type StatusResult struct {
	Status Status
	Source StatusSource
	Raw    Document
}

// Resources is the live usage of a server. Nil fields were absent upstream.
type Resources struct {
	State          Status
	MemoryBytes    *uint64
	CPUPercent     *float64
	DiskBytes      *uint64
	NetworkRxBytes *uint64
	NetworkTxBytes *uint64
	Uptime         *time.Duration
}

type PowerAction string

const (
	PowerStart   PowerAction = "start"
	PowerStop    PowerAction = "stop"
	PowerRestart PowerAction = "restart"
	PowerKill    PowerAction = "kill"
)

func (a PowerAction) Valid() bool {
	switch a {
	case PowerStart, PowerStop, PowerRestart, PowerKill:
		return true
	default:
		return false
	}
}

// Cycle is the payload of one monitor run.
type Cycle struct {
	Sequence  uint64
	StartedAt time.Time
}
