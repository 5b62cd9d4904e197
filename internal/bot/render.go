package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/pterobot/pterobot/internal/domain/entity"
	"github.com/pterobot/pterobot/internal/notify"
)

const (
	colorBlue    = 0x0099FF
	colorBlurple = 0x5865F2

	pageSize = 10

	listCustomIDPrefix = CommandList + ":page:"
	unknownValue       = "unknown"
)

var statusIcons = map[entity.Status]string{
	entity.StatusOnline:     "🟢",
	entity.StatusOffline:    "🔴",
	entity.StatusStarting:   "🟠",
	entity.StatusStopping:   "🟠",
	entity.StatusSuspended:  "⛔",
	entity.StatusInstalling: "⚙️",
	"error":                 "⚠️",
}

func pageCount(total int) int {
	return (total + pageSize - 1) / pageSize
}

// listPage renders one page of servers. page is clamped to the available pages.
func listPage(servers []entity.Server, page int, ownerID string, now time.Time) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	pages := pageCount(len(servers))
	page = max(0, min(page, pages-1))

	start := page * pageSize
	end := min(start+pageSize, len(servers))

	fields := make([]*discordgo.MessageEmbedField, 0, end-start)

	for _, server := range servers[start:end] {
		name := server.Name
		if name == "" {
			name = "(no name)"
		}

		icon, ok := statusIcons[server.Status]
		if !ok {
			icon = "⚫"
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   icon + " " + name,
			Value:  fmt.Sprintf("ID: `%s` | Status: %s", shortID(server), server.Status),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Pterodactyl Servers (%d)", len(servers)),
		Description: fmt.Sprintf("Page %d/%d", page+1, pages),
		Color:       colorBlue,
		Fields:      fields,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}

	row := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Emoji:    &discordgo.ComponentEmoji{Name: "⬅️"},
				Style:    discordgo.PrimaryButton,
				CustomID: listCustomID(page-1, ownerID),
				Disabled: page == 0,
			},
			discordgo.Button{
				Emoji:    &discordgo.ComponentEmoji{Name: "➡️"},
				Style:    discordgo.PrimaryButton,
				CustomID: listCustomID(page+1, ownerID),
				Disabled: page >= pages-1,
			},
		},
	}

	return embed, []discordgo.MessageComponent{row}
}

func shortID(server entity.Server) string {
	if server.Identifier != "" {
		return server.Identifier
	}

	if len(server.UUID) >= 8 {
		return server.UUID[:8]
	}

	if server.UUID != "" {
		return server.UUID
	}

	return "?"
}

// listCustomID encodes the page to display and the user allowed to browse it.
func listCustomID(page int, ownerID string) string {
	return listCustomIDPrefix + strconv.Itoa(page) + ":" + ownerID
}

func parseListCustomID(customID string) (int, string, bool) {
	rest, ok := strings.CutPrefix(customID, listCustomIDPrefix)
	if !ok {
		return 0, "", false
	}

	pageStr, ownerID, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, "", false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, "", false
	}

	return page, ownerID, true
}

func infoEmbed(server entity.Server, uuid string, resources *entity.Resources) *discordgo.MessageEmbed {
	title := server.Name
	if title == "" {
		title = uuid
	}

	if uuid == "" {
		uuid = server.ID()
	}

	field := func(name, value string) *discordgo.MessageEmbedField {
		if value == "" {
			value = unknownValue
		}

		return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
	}

	ram, cpu, disk, uptime := unknownValue, unknownValue, unknownValue, ""

	if resources != nil {
		if resources.MemoryBytes != nil {
			ram = humanize.IBytes(*resources.MemoryBytes)
		}

		if resources.CPUPercent != nil {
			cpu = strconv.FormatFloat(*resources.CPUPercent, 'f', 2, 64) + "%"
		}

		if resources.DiskBytes != nil {
			disk = humanize.IBytes(*resources.DiskBytes)
		}

		if resources.Uptime != nil && *resources.Uptime > 0 {
			uptime = resources.Uptime.Round(time.Second).String()
		}
	}

	fields := []*discordgo.MessageEmbedField{
		field("UUID", uuid),
		field("Status", string(server.Status)),
		field("Node", server.Node),
		field("Owner", server.Owner),
		field("RAM", ram),
		field("CPU", cpu),
		field("Disk", disk),
	}

	if uptime != "" {
		fields = append(fields, field("Uptime", uptime))
	}

	return &discordgo.MessageEmbed{
		Title:       "Info: " + title,
		Description: server.Description,
		Color:       statusColor(server.Status),
		Fields:      fields,
	}
}

func statusColor(status entity.Status) int {
	return notify.Render(entity.ChangeEvent{Current: status}).Color
}

type powerStyle struct {
	title string
	color int
}

var powerStyles = map[entity.PowerAction]powerStyle{
	entity.PowerStart:   {title: "Server Starting", color: notify.ColorGreen},
	entity.PowerStop:    {title: "Server Stopping", color: notify.ColorYellow},
	entity.PowerRestart: {title: "Server Restarting", color: colorBlurple},
	entity.PowerKill:    {title: "Server Killed", color: notify.ColorRed},
}

func powerEmbed(action entity.PowerAction, uuid string) *discordgo.MessageEmbed {
	style := powerStyles[action]

	return &discordgo.MessageEmbed{
		Title:       style.title,
		Description: fmt.Sprintf("Signal sent to server `%s` to **%s**.", uuid, strings.ToUpper(string(action))),
		Color:       style.color,
	}
}

func errorEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: description,
		Color:       notify.ColorRed,
	}
}

func confirmEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       notify.ColorGreen,
	}
}

func helpEmbed(now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Bot Commands",
		Description: "Here are the available commands to manage your Pterodactyl servers:",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "/ptero-list", Value: "List all servers with their status (Online/Offline)."},
			{Name: "/ptero-info <query>", Value: "Get detailed info (Node, Owner, Resources) for a server."},
			{Name: "/ptero-start <uuid>", Value: "Start a specific server.", Inline: true},
			{Name: "/ptero-stop <uuid>", Value: "Stop a specific server.", Inline: true},
			{Name: "/ptero-restart <uuid>", Value: "Restart a specific server.", Inline: true},
			{Name: "/ptero-kill <uuid>", Value: "Kill a specific server.", Inline: true},
			{Name: "/ptero-monitor set-channel <channel>", Value: "Configure the channel for server status notifications."},
			{Name: "/ptero-admin set-role <role>", Value: "Set the role allowed to use the admin commands."},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Pterodactyl Manager Bot"},
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
