package discord

import "github.com/bwmarrin/discordgo"

// AddCommands lists the slash commands the bot registers on startup.
// Persona choices come from the registry so the two never drift.
func (c Client) AddCommands() []*discordgo.ApplicationCommand {
	personaChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(c.personas.List()))
	for _, p := range c.personas.List() {
		personaChoices = append(personaChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  p.Name,
			Value: p.Name,
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "enable_chat",
			Description: "Enable or disable chat in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "enable",
					Description: "true to enable chat, false to disable it",
					Required:    true,
				},
			},
		},
		{
			Name:        "generate",
			Description: "Generate text or an image description",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "What kind of output you want",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "text", Value: "text"},
						{Name: "image", Value: "image"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "The prompt to generate from",
					Required:    true,
				},
			},
		},
		{
			Name:        "ask",
			Description: "Ask a one-off question, no channel history involved",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "What you want to ask",
					Required:    true,
				},
			},
		},
		{
			Name:        "imagine",
			Description: "Describe a scene in detail (text only, no real image)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "scene",
					Description: "The scene you want described",
					Required:    true,
				},
			},
		},
		{
			Name:        "persona",
			Description: "Set the AI persona for this channel, or list the available ones",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "The persona to use; leave empty to list them",
					Required:    false,
					Choices:     personaChoices,
				},
			},
		},
		{
			Name:        "help",
			Description: "Get help with the bot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "topic",
					Description: "A command category to get details on",
					Required:    false,
				},
			},
		},
	}
	return commands
}

// MakeCommandHandlers returns a map of command names to their
// respective functions.
func (c Client) MakeCommandHandlers() map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"enable_chat": c.enableChat,
		"generate":    c.generate,
		"ask":         c.ask,
		"imagine":     c.imagine,
		"persona":     c.setPersona,
		"help":        c.help,
	}
}
