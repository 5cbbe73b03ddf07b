package discord

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"geminibot/database"
	"geminibot/metrics"
)

const commandPrefix = "!"

// User-visible notices. The error one is deliberately generic; the
// real cause only goes to the operator log.
const (
	errorNotice   = "An error occurred while generating a response. Please try again later."
	emptyNotice   = "I could not generate a response to that. Please try again."
	tooLongNotice = "That message is too long for me to read (2000 character limit). Please try a shorter message."
)

// channelSender is the one discordgo method the relay needs to post a
// reply. *discordgo.Session satisfies it; tests swap in a recorder.
type channelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// handleMessage is the MessageCreate handler. Prefix commands are
// peeled off first; everything else goes to the chat relay.
func (c Client) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	metrics.DiscordMessageReceived.Add(1)

	if strings.HasPrefix(m.Content, commandPrefix) {
		c.handlePrefixCommand(s, m)
		return
	}
	c.relay(s, m)
}

// relay implements the channel chat loop: look up the session, build
// the prompt from persona and stored turns, call the model, send the
// chunked reply, and record the turn pair.
func (c Client) relay(s channelSender, m *discordgo.MessageCreate) {
	if m.Content == "" || !c.sessions.IsEnabled(m.ChannelID) {
		return
	}
	metrics.RelayMessages.Add(1)
	logger := c.logger.With("channelID", m.ChannelID)

	// input policy: oversized messages are rejected outright, never
	// truncated, and never reach the model
	if utf8.RuneCountInString(m.Content) > maxMessageLen {
		metrics.RejectedInput.Add(1)
		c.sendText(s, m.ChannelID, tooLongNotice)
		return
	}

	ctx := context.Background()
	personaName := c.sessions.PersonaName(m.ChannelID)
	systemPrompt := c.personas.Prompt(personaName)
	history := c.sessions.History(m.ChannelID)

	c.handleDBerror(c.db.InsertChatMessage(ctx, database.ChatRecord{
		ChannelID: m.ChannelID,
		Username:  m.Author.Username,
		Text:      m.Content,
		Persona:   personaName,
	}))

	reply, err := c.llm.ChatResponse(ctx, systemPrompt, history, m.Content)
	if err != nil {
		logger.Error("relay generation failed", "error", err.Error())
		c.sendText(s, m.ChannelID, errorNotice)
		return
	}
	if reply == "" {
		c.sendText(s, m.ChannelID, emptyNotice)
		return
	}

	for _, chunk := range Render(reply) {
		if _, err := s.ChannelMessageSend(m.ChannelID, chunk); err != nil {
			logger.Error("error sending relay reply", "error", err.Error())
			return
		}
		metrics.DiscordMessageSent.Add(1)
	}

	c.sessions.AppendTurn(m.ChannelID, m.Content, reply)
	c.handleDBerror(c.db.InsertChatMessage(ctx, database.ChatRecord{
		ChannelID: m.ChannelID,
		Username:  c.botUsername(),
		Text:      reply,
		Persona:   personaName,
		IsFromBot: true,
	}))
}

// handlePrefixCommand serves the legacy text commands: !chat for a
// one-shot generation and !help for plain-text help. Unknown prefixes
// are ignored, they may belong to another bot.
func (c Client) handlePrefixCommand(s channelSender, m *discordgo.MessageCreate) {
	name, rest, _ := strings.Cut(strings.TrimPrefix(m.Content, commandPrefix), " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "chat":
		if rest == "" {
			c.sendText(s, m.ChannelID, "Usage: !chat <message>")
			return
		}
		c.handleDBerror(c.db.InsertChatMessage(context.Background(), database.ChatRecord{
			ChannelID: m.ChannelID,
			Username:  m.Author.Username,
			Text:      m.Content,
			IsCommand: true,
		}))
		c.oneShotToChannel(s, m.ChannelID, rest)
	case "help":
		c.sendText(s, m.ChannelID, prefixHelp(rest))
	}
}

// oneShotToChannel runs a one-shot generation and posts the result to
// a channel with the same chunking and error policy as the relay.
func (c Client) oneShotToChannel(s channelSender, channelID, prompt string) {
	ctx := context.Background()
	reply, err := c.llm.OneShotResponse(ctx, prompt)
	if err != nil {
		c.logger.Error("one-shot generation failed", "error", err.Error(), "channelID", channelID)
		c.sendText(s, channelID, errorNotice)
		return
	}
	if reply == "" {
		c.sendText(s, channelID, emptyNotice)
		return
	}
	for _, chunk := range Render(reply) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			c.logger.Error("error sending one-shot reply", "error", err.Error(), "channelID", channelID)
			return
		}
		metrics.DiscordMessageSent.Add(1)
	}

	c.handleDBerror(c.db.InsertChatMessage(ctx, database.ChatRecord{
		ChannelID: channelID,
		Username:  c.botUsername(),
		Text:      reply,
		IsFromBot: true,
		IsCommand: true,
	}))
}

func (c Client) sendText(s channelSender, channelID, text string) {
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		c.logger.Error("error sending message to channel", "error", err.Error(), "channelID", channelID)
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

// botUsername names the bot's side of the chat log. The gateway state
// is only populated after Open.
func (c Client) botUsername() string {
	if c.Session != nil && c.Session.State != nil && c.Session.State.User != nil {
		return c.Session.State.User.Username
	}
	return "bot"
}

func (c Client) handleDBerror(err error) {
	if err != nil {
		c.logger.Error("error writing to chat log", "error", err.Error())
	}
}
