package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatWriter is the audit-log surface the discord layer writes
// through. A failed write never blocks a reply.
type ChatWriter interface {
	InsertChatMessage(ctx context.Context, msg ChatRecord) error
}

// ChatRecord is one logged message, from either side of the relay.
type ChatRecord struct {
	UUID      uuid.UUID `db:"uuid"`
	ChannelID string    `db:"channel_id"`
	Username  string    `db:"username"`
	Text      string    `db:"message"`
	Persona   string    `db:"persona"`
	IsFromBot bool      `db:"is_from_bot"`
	IsCommand bool      `db:"is_command"`
	Time      time.Time `db:"created_at"`
}

// InsertChatMessage writes a chat record. Missing uuid and timestamp
// are filled in here so callers can pass literals.
func (p *Postgres) InsertChatMessage(ctx context.Context, msg ChatRecord) error {
	if msg.UUID == uuid.Nil {
		msg.UUID = uuid.New()
	}
	if msg.Time.IsZero() {
		msg.Time = time.Now()
	}

	query := "INSERT INTO chat_messages (uuid, channel_id, username, message, persona, is_from_bot, is_command, created_at) VALUES (:uuid, :channel_id, :username, :message, :persona, :is_from_bot, :is_command, :created_at)"
	p.logger.Debug("inserting chat message", "messageID", msg.UUID, "channelID", msg.ChannelID)

	if _, err := p.connections.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("error inserting chat message: %w", err)
	}
	return nil
}
