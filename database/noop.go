package database

import "context"

// Noop satisfies ChatWriter when no postgres is configured, so the bot
// can run with zero infrastructure.
type Noop struct{}

func (Noop) InsertChatMessage(ctx context.Context, msg ChatRecord) error {
	return nil
}
