package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"geminibot/database"
	"geminibot/metrics"
)

// imagineTemplate turns an image request into a text prompt. There is
// no actual image generation; the reply is a written description.
const imagineTemplate = "Create a detailed description of: %s"

func (c Client) generate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var mode, prompt string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "mode":
			mode = opt.StringValue()
		case "prompt":
			prompt = opt.StringValue()
		}
	}
	if mode == "image" {
		prompt = fmt.Sprintf(imagineTemplate, prompt)
	}
	c.deferredOneShot(s, i, "generate", prompt)
}

func (c Client) ask(s *discordgo.Session, i *discordgo.InteractionCreate) {
	question := i.ApplicationCommandData().Options[0].StringValue()
	c.deferredOneShot(s, i, "ask", question)
}

func (c Client) imagine(s *discordgo.Session, i *discordgo.InteractionCreate) {
	scene := i.ApplicationCommandData().Options[0].StringValue()
	c.deferredOneShot(s, i, "imagine", fmt.Sprintf(imagineTemplate, scene))
}

// deferredOneShot acks the interaction immediately, then runs a
// one-shot generation. The first chunk answers the deferred ack; any
// further chunks go through the channel's normal send path, in order.
func (c Client) deferredOneShot(s *discordgo.Session, i *discordgo.InteractionCreate, command, prompt string) {
	start := time.Now()
	metrics.CommandTotal.WithLabelValues(command).Inc()
	defer func() {
		metrics.CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	}()

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		c.logger.Error("error deferring interaction", "command", command, "error", err.Error())
		metrics.CommandErrors.WithLabelValues(command).Inc()
		return
	}

	ctx := context.Background()
	reply, err := c.llm.OneShotResponse(ctx, prompt)
	if err != nil {
		c.logger.Error("command generation failed", "command", command, "error", err.Error())
		metrics.CommandErrors.WithLabelValues(command).Inc()
		c.followupText(s, i, command, errorNotice)
		return
	}
	if reply == "" {
		c.followupText(s, i, command, emptyNotice)
		return
	}

	chunks := Render(reply)
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: chunks[0],
	}); err != nil {
		c.logger.Error("error sending followup", "command", command, "error", err.Error())
		metrics.CommandErrors.WithLabelValues(command).Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)

	for _, chunk := range chunks[1:] {
		if _, err := s.ChannelMessageSend(i.ChannelID, chunk); err != nil {
			c.logger.Error("error sending chunk to channel", "command", command, "error", err.Error())
			return
		}
		metrics.DiscordMessageSent.Add(1)
	}

	c.handleDBerror(c.db.InsertChatMessage(ctx, database.ChatRecord{
		ChannelID: i.ChannelID,
		Username:  c.botUsername(),
		Text:      reply,
		IsFromBot: true,
		IsCommand: true,
	}))
}

func (c Client) followupText(s *discordgo.Session, i *discordgo.InteractionCreate, command, text string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: text,
	}); err != nil {
		c.logger.Error("error sending followup", "command", command, "error", err.Error())
		return
	}
	metrics.DiscordMessageSent.Add(1)
}
