package panel

import (
	"strings"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

// Extraction rules, evaluated in order, first present value wins.
// New upstream shapes are supported by adding paths here.
var (
	attributesPaths = []fieldPath{
		{"attributes"},
		{"data", "attributes"},
	}

	identityPaths = []fieldPath{
		{"uuid"},
		{"identifier"},
		{"id"},
		{"external_id"},
		{"server", "identifier"},
	}

	identifierPaths = []fieldPath{
		{"identifier"},
		{"server", "identifier"},
	}

	namePaths = []fieldPath{
		{"name"},
		{"server", "name"},
		{"server", "attributes", "name"},
		{"name_full"},
	}

	statusPaths = []fieldPath{
		{"status"},
		{"current_state", "state"},
		{"current_state"},
		{"server", "attributes", "status"},
		{"server", "status"},
		{"state"},
		{"attributes", "state"},
		{"attributes", "current_state"},
	}

	suspendedFlags = []fieldPath{
		{"is_suspended"},
		{"suspended"},
	}

	installingFlags = []fieldPath{
		{"is_installing"},
	}

	// Used when the status candidate is itself an object
	nestedStatusPaths = []fieldPath{
		{"state"},
		{"current_state"},
		{"status"},
	}

	nodePaths = []fieldPath{
		{"relationships", "node", "attributes", "name"},
		{"node"},
		{"server", "node"},
		{"node_id"},
	}

	ownerPaths = []fieldPath{
		{"relationships", "user", "attributes", "username"},
		{"owner"},
		{"relationships", "user"},
		{"server", "relationships", "user"},
		{"user"},
	}

	descriptionPaths = []fieldPath{
		{"description"},
		{"meta"},
		{"server", "attributes", "description"},
	}
)

var statusAliases = map[string]entity.Status{
	"running":      entity.StatusOnline,
	"running_rcon": entity.StatusOnline,
	"online":       entity.StatusOnline,
	"start":        entity.StatusStarting,
	"starting":     entity.StatusStarting,
	"stop":         entity.StatusStopping,
	"stopping":     entity.StatusStopping,
	"offline":      entity.StatusOffline,
	"off":          entity.StatusOffline,
	"suspended":    entity.StatusSuspended,
	"installing":   entity.StatusInstalling,
	"built":        entity.StatusBuilt,
	"no-access":    entity.StatusRestricted,
	"no_access":    entity.StatusRestricted,
	"restricted":   entity.StatusRestricted,
	"unknown":      entity.StatusUnknown,
}

// Normalize converts any known panel server shape into a Server. It never fails.
func Normalize(raw entity.Document) entity.Server {
	attrs := attributes(raw)

	return entity.Server{
		UUID:        extractString(attrs, identityPaths),
		Identifier:  extractString(attrs, identifierPaths),
		Name:        extractString(attrs, namePaths),
		Status:      resolveStatus(attrs),
		Node:        extractString(attrs, nodePaths),
		Owner:       extractString(attrs, ownerPaths),
		Description: extractString(attrs, descriptionPaths),
	}
}

// CanonicalStatus maps an upstream status string to a Status.
// Unknown values are kept lower-cased.
func CanonicalStatus(value string) entity.Status {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return entity.StatusUnknown
	}

	status, ok := statusAliases[lower]
	if ok {
		return status
	}

	return entity.Status(lower)
}

func attributes(raw entity.Document) map[string]interface{} {
	if raw == nil {
		return map[string]interface{}{}
	}

	attrs, ok := firstObject(raw, attributesPaths)
	if ok {
		return attrs
	}

	return raw
}

func resolveStatus(attrs map[string]interface{}) entity.Status {
	candidate, _ := firstPresent(attrs, statusPaths)

	switch {
	case firstTruthy(attrs, installingFlags):
		candidate = string(entity.StatusInstalling)
	case firstTruthy(attrs, suspendedFlags):
		candidate = string(entity.StatusSuspended)
	}

	// Legacy numeric status code
	if number, ok := asNumber(candidate); ok {
		if number == 1 {
			return entity.StatusOnline
		}

		return entity.StatusOffline
	}

	if !present(candidate) {
		return entity.StatusUnknown
	}

	if obj, ok := asObject(candidate); ok {
		nested, found := firstPresent(obj, nestedStatusPaths)
		if found {
			candidate = nested
		} else {
			candidate = stringify(obj)
		}
	}

	return CanonicalStatus(stringify(candidate))
}
