package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"geminibot/metrics"
)

func (c Client) enableChat(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	metrics.CommandTotal.WithLabelValues("enable_chat").Inc()
	defer func() {
		metrics.CommandDuration.WithLabelValues("enable_chat").Observe(time.Since(start).Seconds())
	}()

	enable := i.ApplicationCommandData().Options[0].BoolValue()
	if enable {
		c.sessions.Enable(i.ChannelID)
		c.logger.Info("chat enabled", "channelID", i.ChannelID)
		c.respondText(s, i, "enable_chat", "Chat enabled in this channel!")
		return
	}
	c.sessions.Disable(i.ChannelID)
	c.logger.Info("chat disabled", "channelID", i.ChannelID)
	c.respondText(s, i, "enable_chat", "Chat disabled in this channel!")
}

// respondText answers an interaction with a plain text message.
func (c Client) respondText(s *discordgo.Session, i *discordgo.InteractionCreate, command, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
		},
	})
	if err != nil {
		c.logger.Error("error responding to command", "command", command, "error", err.Error())
		metrics.CommandErrors.WithLabelValues(command).Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}
