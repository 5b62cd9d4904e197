package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/pterobot/pterobot/internal/common"
	"github.com/pterobot/pterobot/internal/config"
)

var ErrMissingToken = errors.New("discord token is not set")

// CreateDiscordSession builds a REST-only session. Call OpenDiscordGateway to receive interactions.
func CreateDiscordSession(conf config.Discord) (*discordgo.Session, error) {
	if conf.Creds.Token == "" {
		return nil, ErrMissingToken
	}

	ret, err := discordgo.New("Bot " + conf.Creds.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	ret.Identify.Intents = discordgo.IntentsGuilds

	return ret, nil
}

func OpenDiscordGateway(session *discordgo.Session) (common.CloseFunc, error) {
	err := session.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open discord gateway: %w", err)
	}

	shutdown := func(context.Context) error {
		return session.Close()
	}

	return shutdown, nil
}
