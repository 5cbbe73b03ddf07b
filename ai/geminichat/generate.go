package geminichat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"geminibot/metrics"
	"geminibot/persona"
	"geminibot/session"
)

// ChatResponse sends the channel's persona prompt, its stored turns,
// and the new user message to the model. With an empty history this
// degenerates to systemPrompt + "User: <text>".
func (b *Bot) ChatResponse(ctx context.Context, systemPrompt string, history []session.Turn, userText string) (string, error) {
	messageID := uuid.New()

	messageHistory := []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt)}
	for _, turn := range history {
		chatType := llms.ChatMessageTypeHuman
		if turn.Role == session.RoleAssistant {
			chatType = llms.ChatMessageTypeAI
		}
		messageHistory = append(messageHistory, llms.TextParts(chatType, turn.Content))
	}
	messageHistory = append(messageHistory, llms.TextParts(llms.ChatMessageTypeHuman, "User: "+userText))

	b.logger.Debug("calling gemini for chat response", "messageID", messageID, "historyLen", len(history))
	return b.generate(ctx, messageHistory, messageID)
}

// OneShotResponse answers a single prompt with the default system
// prompt and no channel history. Used by the slash and prefix commands.
func (b *Bot) OneShotResponse(ctx context.Context, prompt string) (string, error) {
	messageID := uuid.New()

	messageHistory := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, persona.DefaultPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	b.logger.Debug("calling gemini for one-shot response", "messageID", messageID)
	return b.generate(ctx, messageHistory, messageID)
}

func (b *Bot) generate(ctx context.Context, messageHistory []llms.MessageContent, messageID uuid.UUID) (string, error) {
	resp, err := b.llm.GenerateContent(ctx, messageHistory,
		llms.WithCandidateCount(1),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		b.logger.Error("failed to get gemini response", "error", err.Error(), "messageID", messageID)
		metrics.FailedLLMGen.Add(1)
		return "", fmt.Errorf("failed to get gemini response: %w", err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Content)
	}
	if text == "" {
		b.logger.Warn("empty response from gemini", "messageID", messageID)
		metrics.EmptyLLMResponse.Add(1)
		return "", nil
	}

	b.logger.Debug("received gemini response", "messageID", messageID, "responseLength", len(text))
	metrics.SuccessfulLLMGen.Add(1)
	return text, nil
}
