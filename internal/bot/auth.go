package bot

import (
	"context"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-logr/logr"

	"github.com/pterobot/pterobot/internal/config"
)

// Authorizer gates the admin commands. A member is authorized when one of the following holds:
// it has the Administrator permission, it has the admin role configured for the guild,
// its user id is allowed, or it has the global admin role.
type Authorizer struct {
	settings     Settings
	allowedUsers []string
	adminRoleID  string

	logger *logr.Logger
}

func NewAuthorizer(settings Settings, conf config.Auth) Authorizer {
	allowed := make([]string, 0, len(conf.AllowedUserIDs))

	for _, id := range conf.AllowedUserIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			allowed = append(allowed, id)
		}
	}

	return Authorizer{
		settings:     settings,
		allowedUsers: allowed,
		adminRoleID:  strings.TrimSpace(conf.AdminRoleID),
	}
}

func (a Authorizer) WithLogger(logger logr.Logger) Authorizer {
	a.logger = &logger

	return a
}

func (a Authorizer) Authorized(ctx context.Context, i *discordgo.Interaction) bool {
	member := i.Member
	if member == nil {
		a.logInfo(1, "Denied, no member", "user", userID(i))

		return false
	}

	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	guildRole := a.settings.GetAdminRole(ctx, i.GuildID)
	if guildRole != "" && slices.Contains(member.Roles, guildRole) {
		return true
	}

	if slices.Contains(a.allowedUsers, userID(i)) {
		return true
	}

	if a.adminRoleID != "" && slices.Contains(member.Roles, a.adminRoleID) {
		return true
	}

	a.logInfo(0, "Denied", "user", userID(i), "guild", i.GuildID, "roles", member.Roles)

	return false
}

func userID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}

	if i.User != nil {
		return i.User.ID
	}

	return ""
}

func (a Authorizer) logInfo(level int, msg string, keysAndValues ...any) {
	if a.logger == nil {
		return
	}

	a.logger.V(level).Info(msg, keysAndValues...)
}
