package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"geminibot/metrics"
)

// setPersona handles the /persona command. With a name it assigns the
// persona to the channel; without one it lists the registry. Setting a
// persona does not require chat to be enabled in the channel.
func (c Client) setPersona(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	metrics.CommandTotal.WithLabelValues("persona").Inc()
	defer func() {
		metrics.CommandDuration.WithLabelValues("persona").Observe(time.Since(start).Seconds())
	}()

	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 {
		c.listPersonas(s, i)
		return
	}

	name := opts[0].StringValue()
	def, ok := c.personas.Get(name)
	if !ok {
		c.respondText(s, i, "persona", fmt.Sprintf("I don't know a persona called %q. Use /persona with no argument to list them.", name))
		return
	}

	c.sessions.SetPersona(i.ChannelID, def.Name)
	c.logger.Info("persona set", "channelID", i.ChannelID, "persona", def.Name)
	c.respondText(s, i, "persona", fmt.Sprintf("Persona set to: %s %s", def.Name, def.Icon))
}

func (c Client) listPersonas(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defs := c.personas.List()
	fields := make([]*discordgo.MessageEmbedField, 0, len(defs))
	for _, d := range defs {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", d.Icon, d.Name),
			Value: d.Tagline,
		})
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Available personas",
					Description: "Pick one with /persona name:<name>. Channels without a persona use the default assistant.",
					Color:       embedColor,
					Fields:      fields,
					Footer: &discordgo.MessageEmbedFooter{
						Text: "Personas only shape replies in channels where chat is enabled.",
					},
				},
			},
		},
	})
	if err != nil {
		c.logger.Error("error responding to persona list", "error", err.Error())
		metrics.CommandErrors.WithLabelValues("persona").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}
