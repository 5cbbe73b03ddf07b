// package session owns all per-channel chat state. Nothing here is
// persisted; the store dies with the process.
package session

import "sync"

// Role tags a stored turn as either side of the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one user message or one assistant reply. Turns are appended
// in strict user/assistant pairs and never edited.
type Turn struct {
	Role    Role
	Content string
}

// maxHistory bounds each channel's history to the 5 most recent
// user/assistant pairs. Oldest entries are dropped first.
const maxHistory = 10

// Store tracks which channels have chat enabled and what was recently
// said in them. Personas live in their own map so a persona can be
// assigned to a channel that never enabled chat, and disabling chat
// does not clear it.
//
// discordgo runs event handlers on their own goroutines, so every
// operation takes the store-wide lock. Throughput is low enough that a
// coarse lock is fine.
type Store struct {
	mu       sync.RWMutex
	active   map[string][]Turn
	personas map[string]string
}

func NewStore() *Store {
	return &Store{
		active:   make(map[string][]Turn),
		personas: make(map[string]string),
	}
}

// Enable turns chat on for a channel. Re-enabling an active channel
// resets its history.
func (s *Store) Enable(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[channelID] = nil
}

// Disable removes the channel's session and history. No-op if the
// channel was never enabled.
func (s *Store) Disable(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, channelID)
}

// IsEnabled reports whether the channel has an active session.
func (s *Store) IsEnabled(channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[channelID]
	return ok
}

// SetPersona assigns a persona to a channel. The channel does not have
// to be enabled. Callers validate the name against the registry.
func (s *Store) SetPersona(channelID, persona string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personas[channelID] = persona
}

// PersonaName returns the channel's assigned persona name, or "" if
// none was ever set.
func (s *Store) PersonaName(channelID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.personas[channelID]
}

// AppendTurn records a user/assistant pair and truncates the history
// to the most recent maxHistory entries. Appends to a disabled channel
// are dropped.
func (s *Store) AppendTurn(channelID, userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.active[channelID]
	if !ok {
		return
	}
	h = append(h,
		Turn{Role: RoleUser, Content: userText},
		Turn{Role: RoleAssistant, Content: assistantText},
	)
	if len(h) > maxHistory {
		h = h[len(h)-maxHistory:]
	}
	s.active[channelID] = h
}

// History returns a copy of the channel's recent turns, oldest first.
func (s *Store) History(channelID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.active[channelID]
	out := make([]Turn, len(h))
	copy(out, h)
	return out
}
