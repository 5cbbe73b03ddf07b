package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"geminibot/ai"
	"geminibot/database"
	"geminibot/logging"
	"geminibot/persona"
	"geminibot/session"
)

// Client wires the discord gateway to the model, the channel state,
// and the chat log.
type Client struct {
	Session  *discordgo.Session
	llm      ai.Chatter
	sessions *session.Store
	personas *persona.Registry
	db       database.ChatWriter
	logger   *logging.Logger
}

// Setup opens the gateway connection and registers the slash commands.
// An invalid token is fatal. A failed command registration is logged
// and skipped so the bot still serves whatever did register.
func Setup(token string, llm ai.Chatter, store *session.Store, registry *persona.Registry, db database.ChatWriter, logger *logging.Logger) (Client, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return Client{}, fmt.Errorf("error creating discord session: %w", err)
	}
	// message content is a privileged intent; the relay is blind
	// without it
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	c := Client{
		Session:  dg,
		llm:      llm,
		sessions: store,
		personas: registry,
		db:       db,
		logger:   logger,
	}

	commandHandlers := c.MakeCommandHandlers()
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
	dg.AddHandler(c.handleMessage)

	// opens websocket connection
	err = dg.Open()
	if err != nil {
		return Client{}, fmt.Errorf("error opening connection to discord: %w", err)
	}

	for _, v := range c.AddCommands() {
		_, err := dg.ApplicationCommandCreate(dg.State.User.ID, "", v)
		if err != nil {
			logger.Error("error creating command", "command", v.Name, "error", err.Error())
		}
	}

	return c, nil
}
