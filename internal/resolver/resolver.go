package resolver

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

//go:generate mockgen -source=resolver.go -package=mock -destination=./mock/mock_resolver.go

type ServerLister interface {
	ListServers(ctx context.Context, filters url.Values) ([]entity.Document, error)
}

var (
	exactKeys = []string{"uuid", "id", "external_id"}

	shortIdentifier = regexp.MustCompile(`^[0-9a-fA-F]{8}$`)
)

type Resolver struct {
	lister ServerLister
}

func New(lister ServerLister) Resolver {
	return Resolver{lister: lister}
}

// Resolve matches query against every server. A server may match on several axes and
// then appears once per axis. No match is not an error.
func (r Resolver) Resolve(ctx context.Context, query string) ([]entity.Match, error) {
	if query == "" {
		return nil, nil
	}

	servers, err := r.lister.ListServers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	lowerQuery := strings.ToLower(query)

	var ret []entity.Match

	for _, raw := range servers {
		attrs := attributes(raw)
		id := identity(attrs)
		identifier := firstString(attrs, "identifier")
		name := firstString(attrs, "name")
		if name == "" {
			if server, ok := attrs["server"].(map[string]interface{}); ok {
				name = firstString(server, "name")
			}
		}

		for _, key := range exactKeys {
			if firstString(attrs, key) == query {
				ret = append(ret, entity.Match{Type: entity.MatchUUID, ID: id, Raw: raw})

				break
			}
		}

		if identifier != "" && identifier == query {
			ret = append(ret, entity.Match{Type: entity.MatchIdentifier, ID: identifier, Raw: raw})
		}

		if name != "" && strings.Contains(strings.ToLower(name), lowerQuery) {
			ret = append(ret, entity.Match{Type: entity.MatchName, ID: id, Raw: raw})
		}
	}

	return ret, nil
}

// Dedupe keeps the first match of each server, in order.
func Dedupe(matches []entity.Match) []entity.Match {
	seen := make(map[string]struct{}, len(matches))
	ret := make([]entity.Match, 0, len(matches))

	for _, m := range matches {
		key := identity(attributes(m.Raw))
		if key == "" {
			key = m.ID
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		ret = append(ret, m)
	}

	return ret
}

// Keys returns the numeric panel id and the uuid of a match, for detail lookups.
// uuid falls back to the match id.
func Keys(match entity.Match) (string, string) {
	attrs := attributes(match.Raw)

	id := firstString(attrs, "id")

	uuid := firstString(attrs, "uuid")
	if uuid == "" {
		uuid = match.ID
	}

	return id, uuid
}

// LooksLikeIdentifier accepts a full uuid or an 8 hex characters short identifier.
func LooksLikeIdentifier(query string) bool {
	if shortIdentifier.MatchString(query) {
		return true
	}

	if len(query) != 36 {
		return false
	}

	_, err := uuid.Parse(query)

	return err == nil
}

func attributes(raw entity.Document) map[string]interface{} {
	if nested, ok := raw["attributes"].(map[string]interface{}); ok {
		return nested
	}

	return raw
}

func identity(attrs map[string]interface{}) string {
	return firstString(attrs, "uuid", "id", "identifier", "external_id")
}

func firstString(attrs map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := attrs[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return ""
}
