package bot_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/bot"
	"github.com/pterobot/pterobot/internal/bot/mock"
)

func TestDefinitions(t *testing.T) {
	names := map[string]*discordgo.ApplicationCommand{}
	for _, def := range bot.Definitions() {
		assert.NotEmpty(t, def.Description, def.Name)
		names[def.Name] = def
	}

	for _, name := range []string{
		bot.CommandHelp, bot.CommandList, bot.CommandInfo,
		bot.CommandStart, bot.CommandStop, bot.CommandRestart, bot.CommandKill,
		bot.CommandMonitor, bot.CommandAdmin,
	} {
		assert.Contains(t, names, name)
	}

	require.NotNil(t, names[bot.CommandMonitor].DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionAdministrator), *names[bot.CommandMonitor].DefaultMemberPermissions)
	assert.Nil(t, names[bot.CommandHelp].DefaultMemberPermissions)
}

func TestSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mock.NewMockCommandRegistrar(ctrl)

	registrar.EXPECT().
		ApplicationCommandBulkOverwrite("app-1", "", gomock.Len(len(bot.Definitions()))).
		DoAndReturn(func(_, _ string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
			return commands, nil
		})

	created, err := bot.Sync(registrar, "app-1", "")
	require.NoError(t, err)
	assert.Len(t, created, len(bot.Definitions()))

	registrar.EXPECT().
		ApplicationCommandBulkOverwrite("app-1", "guild-1", gomock.Any()).
		Return(nil, errors.New("401: Unauthorized"))

	_, err = bot.Sync(registrar, "app-1", "guild-1")
	assert.ErrorContains(t, err, "failed to sync commands")
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrar := mock.NewMockCommandRegistrar(ctrl)

	registrar.EXPECT().
		ApplicationCommandBulkOverwrite("app-1", "guild-1", gomock.Len(0)).
		Return(nil, nil)

	assert.NoError(t, bot.Delete(registrar, "app-1", "guild-1"))
}
