package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	ColorGreen  = 0x57F287
	ColorRed    = 0xED4245
	ColorYellow = 0xFEE75C
	ColorGrey   = 0x95A5A6
)

type style struct {
	label string
	color int
	emoji string
	// transient states read "is STARTING" rather than "is now STARTING"
	transient bool
}

var styles = map[entity.Status]style{
	entity.StatusOnline:   {label: "ONLINE", color: ColorGreen, emoji: "🟢"},
	entity.StatusOffline:  {label: "OFFLINE", color: ColorRed, emoji: "🔴"},
	entity.StatusStarting: {label: "STARTING", color: ColorYellow, emoji: "🟠", transient: true},
	entity.StatusStopping: {label: "STOPPING", color: ColorYellow, emoji: "🟠", transient: true},
}

// Message is the rendering of one change.
type Message struct {
	Title       string
	Description string
	Label       string
	Color       int
	Emoji       string
	Timestamp   time.Time
}

func Render(change entity.ChangeEvent) Message {
	name := change.Server.Name
	if name == "" {
		name = change.Server.ID()
	}

	s, ok := styles[change.Current]
	if !ok {
		s = style{label: strings.ToUpper(string(change.Current)), color: ColorGrey}
	}

	verb := "is now"
	if s.transient {
		verb = "is"
	}

	description := fmt.Sprintf("The server **%s** %s **%s**", name, verb, s.label)
	if s.emoji != "" {
		description += " " + s.emoji
	}

	return Message{
		Title:       "Server Status Change: " + name,
		Description: description,
		Label:       s.label,
		Color:       s.color,
		Emoji:       s.emoji,
		Timestamp:   change.ObservedAt,
	}
}

func (m Message) Embed() *discordgo.MessageEmbed {
	ret := &discordgo.MessageEmbed{
		Title:       m.Title,
		Description: m.Description,
		Color:       m.Color,
	}

	if !m.Timestamp.IsZero() {
		ret.Timestamp = m.Timestamp.UTC().Format(time.RFC3339)
	}

	return ret
}
