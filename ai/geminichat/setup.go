// package geminichat implements the chatter interface on top of the
// Gemini API through langchaingo's googleai provider.
package geminichat

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"geminibot/logging"
)

// Bot is a client for the Gemini generation API.
type Bot struct {
	llm    llms.Model
	logger *logging.Logger
}

// Setup creates the gemini client. All four harm categories are set to
// no blocking; a safety rejection surfaces as a generation error like
// any other API failure.
func Setup(ctx context.Context, apiKey, modelName string, logger *logging.Logger) (*Bot, error) {
	if logger == nil {
		logger = logging.Default()
	}

	logger.Info("setting up gemini client", "model", modelName)

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
		googleai.WithHarmThreshold(googleai.HarmBlockNone),
	)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err.Error())
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Bot{
		llm:    llm,
		logger: logger,
	}, nil
}
