// package ai defines the interface the bot uses to talk to the
// generation model. The discord layer only sees this interface so
// tests can swap in a mock.
package ai

import (
	"context"

	"geminibot/session"
)

// Chatter is implemented by the gemini client. Both methods return
// ("", nil) when the model produced nothing, which callers treat
// differently from an error.
type Chatter interface {
	// ChatResponse answers a relayed channel message with the
	// channel's persona prompt and recent turns as context.
	ChatResponse(ctx context.Context, systemPrompt string, history []session.Turn, userText string) (string, error)
	// OneShotResponse answers a single prompt with no channel state.
	OneShotResponse(ctx context.Context, prompt string) (string, error)
}
