package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"geminibot/metrics"
)

const embedColor = 0x5865F2

// helpCategory groups commands for the help embed. The table is static
// metadata; rendering it touches no bot state.
type helpCategory struct {
	name     string
	commands string
}

var helpCategories = []helpCategory{
	{
		name:     "Chat",
		commands: "/enable_chat enable:<true|false> — toggle the channel chat relay\n!chat <message> — one-off reply without enabling the relay",
	},
	{
		name:     "Generation",
		commands: "/generate mode:<text|image> prompt:<...> — one-shot generation\n/ask question:<...> — same as generate in text mode\n/imagine scene:<...> — describe a scene in detail (text only)",
	},
	{
		name:     "Personas",
		commands: "/persona name:<name> — set this channel's persona\n/persona — list the available personas",
	},
	{
		name:     "Misc",
		commands: "/help [topic] — this message\n!help [topic] — plain-text help",
	},
}

func (c Client) help(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	metrics.CommandTotal.WithLabelValues("help").Inc()
	defer func() {
		metrics.CommandDuration.WithLabelValues("help").Observe(time.Since(start).Seconds())
	}()

	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		c.respondText(s, i, "help", prefixHelp(opts[0].StringValue()))
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(helpCategories))
	for _, cat := range helpCategories {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  cat.name,
			Value: cat.commands,
		})
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Chat bot commands",
					Description: "Enable chat in a channel and I'll reply to every message there. Replies longer than the platform limit arrive in multiple parts.",
					Color:       embedColor,
					Fields:      fields,
					Footer: &discordgo.MessageEmbedFooter{
						Text: "Chat history is kept per channel and forgotten on restart.",
					},
				},
			},
		},
	})
	if err != nil {
		c.logger.Error("error responding to help command", "error", err.Error())
		metrics.CommandErrors.WithLabelValues("help").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

// prefixHelp renders the plain-text help used by !help and by
// /help with a topic argument.
func prefixHelp(topic string) string {
	if topic != "" {
		for _, cat := range helpCategories {
			if strings.EqualFold(cat.name, topic) {
				return fmt.Sprintf("%s commands:\n%s", cat.name, cat.commands)
			}
		}
		return fmt.Sprintf("Unknown help topic %q. Topics: %s", topic, strings.Join(topicNames(), ", "))
	}

	var b strings.Builder
	b.WriteString("Commands by category:\n")
	for _, cat := range helpCategories {
		fmt.Fprintf(&b, "\n%s:\n%s\n", cat.name, cat.commands)
	}
	return b.String()
}

func topicNames() []string {
	names := make([]string, 0, len(helpCategories))
	for _, cat := range helpCategories {
		names = append(names, cat.name)
	}
	return names
}
