package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/resolver"
	"github.com/pterobot/pterobot/internal/resolver/mock"
)

func server(id float64, uuid, identifier, name string) entity.Document {
	return entity.Document{
		"object": "server",
		"attributes": map[string]interface{}{
			"id":         id,
			"uuid":       uuid,
			"identifier": identifier,
			"name":       name,
		},
	}
}

var servers = []entity.Document{
	server(1, "1a7ce997-259b-452e-8b4e-cecc464142ca", "1a7ce997", "Survival"),
	server(2, "5b2e0b9c-7f1e-4b8a-9d43-0c1b2a3d4e5f", "5b2e0b9c", "Survival-2"),
	server(3, "9f8e7d6c-5b4a-4392-8180-7f6e5d4c3b2a", "9f8e7d6c", "Creative"),
}

func newResolver(t *testing.T, list []entity.Document, err error) resolver.Resolver {
	ctrl := gomock.NewController(t)

	lister := mock.NewMockServerLister(ctrl)
	lister.EXPECT().ListServers(gomock.Any(), gomock.Any()).Return(list, err).AnyTimes()

	return resolver.New(lister)
}

func TestResolveNameSubstring(t *testing.T) {
	matches, err := newResolver(t, servers, nil).Resolve(context.Background(), "survival")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, entity.MatchName, m.Type)
	}
	assert.Equal(t, "1a7ce997-259b-452e-8b4e-cecc464142ca", matches[0].ID)
	assert.Equal(t, "5b2e0b9c-7f1e-4b8a-9d43-0c1b2a3d4e5f", matches[1].ID)
}

func TestResolveExactUUID(t *testing.T) {
	collisions := append([]entity.Document{}, servers...)
	collisions = append(collisions, server(4, "0d0d0d0d-0000-4000-8000-000000000000", "0d0d0d0d", "1a7ce997-259b-452e-8b4e-cecc464142ca-copy"))

	matches, err := newResolver(t, collisions, nil).Resolve(context.Background(), "1a7ce997-259b-452e-8b4e-cecc464142ca")
	require.NoError(t, err)

	var exact []entity.Match
	for _, m := range matches {
		if m.Type == entity.MatchUUID {
			exact = append(exact, m)
		}
	}

	require.Len(t, exact, 1)
	assert.Equal(t, "1a7ce997-259b-452e-8b4e-cecc464142ca", exact[0].ID)
}

func TestResolveIdentifier(t *testing.T) {
	list := []entity.Document{server(5, "", "abcd1234", "abcd1234 world")}

	matches, err := newResolver(t, list, nil).Resolve(context.Background(), "abcd1234")
	require.NoError(t, err)

	require.Len(t, matches, 2, "identifier and name both match")
	assert.Equal(t, entity.MatchIdentifier, matches[0].Type)
	assert.Equal(t, entity.MatchName, matches[1].Type)

	deduped := resolver.Dedupe(matches)
	require.Len(t, deduped, 1)
	assert.Equal(t, entity.MatchIdentifier, deduped[0].Type)
	assert.Equal(t, "abcd1234", deduped[0].ID)
}

func TestResolveNumericID(t *testing.T) {
	matches, err := newResolver(t, servers, nil).Resolve(context.Background(), "3")
	require.NoError(t, err)

	require.Len(t, matches, 1, "Creative has the numeric id 3")
	assert.Equal(t, entity.MatchUUID, matches[0].Type)
	assert.Equal(t, "9f8e7d6c-5b4a-4392-8180-7f6e5d4c3b2a", matches[0].ID)
}

func TestResolveFlatDocuments(t *testing.T) {
	list := []entity.Document{{"uuid": "u-1", "name": "Lobby"}}

	matches, err := newResolver(t, list, nil).Resolve(context.Background(), "lob")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "u-1", matches[0].ID)
}

func TestResolveNoMatch(t *testing.T) {
	matches, err := newResolver(t, servers, nil).Resolve(context.Background(), "skyblock")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveEmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mock.NewMockServerLister(ctrl)

	matches, err := resolver.New(lister).Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveListFailure(t *testing.T) {
	errPanel := errors.New("panel down")

	_, err := newResolver(t, nil, errPanel).Resolve(context.Background(), "survival")
	assert.ErrorIs(t, err, errPanel)
}

func TestLooksLikeIdentifier(t *testing.T) {
	for query, expected := range map[string]bool{
		"1a7ce997-259b-452e-8b4e-cecc464142ca":   true,
		"1A7CE997-259B-452E-8B4E-CECC464142CA":   true,
		"1a7ce997":                               true,
		"1a7ce99":                                false,
		"survival":                               false,
		"1a7ce997-259b-452e-8b4e-cecc464142cz":   false,
		"{1a7ce997-259b-452e-8b4e-cecc464142ca}": false,
	} {
		assert.Equal(t, expected, resolver.LooksLikeIdentifier(query), "query %q", query)
	}
}

func TestKeys(t *testing.T) {
	id, uuid := resolver.Keys(entity.Match{Type: entity.MatchName, ID: "ignored", Raw: servers[2]})
	assert.Equal(t, "3", id)
	assert.Equal(t, "9f8e7d6c-5b4a-4392-8180-7f6e5d4c3b2a", uuid)

	id, uuid = resolver.Keys(entity.Match{Type: entity.MatchIdentifier, ID: "1a2b3c4d", Raw: entity.Document{"identifier": "1a2b3c4d"}})
	assert.Empty(t, id)
	assert.Equal(t, "1a2b3c4d", uuid)
}
