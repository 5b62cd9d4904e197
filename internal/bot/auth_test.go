package bot_test

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pterobot/pterobot/internal/bot"
	"github.com/pterobot/pterobot/internal/bot/mock"
	"github.com/pterobot/pterobot/internal/config"
)

func TestAuthorizer(t *testing.T) {
	conf := config.Auth{
		AllowedUserIDs: []string{" user-allowed ", ""},
		AdminRoleID:    "role-global",
	}

	tcs := []struct {
		name       string
		member     *discordgo.Member
		guildRole  string
		expectRole bool
		authorized bool
	}{
		{
			name:       "administrator permission",
			member:     &discordgo.Member{User: &discordgo.User{ID: "user-x"}, Permissions: discordgo.PermissionAdministrator | discordgo.PermissionSendMessages},
			authorized: true,
		},
		{
			name:       "guild admin role",
			member:     &discordgo.Member{User: &discordgo.User{ID: "user-x"}, Roles: []string{"role-guild"}},
			guildRole:  "role-guild",
			expectRole: true,
			authorized: true,
		},
		{
			name:       "allowed user",
			member:     &discordgo.Member{User: &discordgo.User{ID: "user-allowed"}},
			expectRole: true,
			authorized: true,
		},
		{
			name:       "global admin role",
			member:     &discordgo.Member{User: &discordgo.User{ID: "user-x"}, Roles: []string{"role-global"}},
			expectRole: true,
			authorized: true,
		},
		{
			name:       "guild role of another member",
			member:     &discordgo.Member{User: &discordgo.User{ID: "user-x"}, Roles: []string{"role-other"}},
			guildRole:  "role-guild",
			expectRole: true,
		},
		{
			name: "direct message",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settings := mock.NewMockSettings(ctrl)

			if tc.expectRole {
				settings.EXPECT().GetAdminRole(gomock.Any(), "guild-1").Return(tc.guildRole)
			}

			auth := bot.NewAuthorizer(settings, conf)

			i := &discordgo.Interaction{
				GuildID: "guild-1",
				Member:  tc.member,
				User:    &discordgo.User{ID: "user-allowed"},
			}

			assert.Equal(t, tc.authorized, auth.Authorized(context.Background(), i))
		})
	}
}
