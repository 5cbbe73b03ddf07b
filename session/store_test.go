package session

import (
	"fmt"
	"testing"
)

func TestStore_EnableDisable(t *testing.T) {
	s := NewStore()

	if s.IsEnabled("123") {
		t.Error("Store.IsEnabled() = true for a channel that was never enabled")
	}

	s.Enable("123")
	if !s.IsEnabled("123") {
		t.Error("Store.IsEnabled() = false after Enable()")
	}

	s.AppendTurn("123", "hi", "hello")
	s.Disable("123")
	if s.IsEnabled("123") {
		t.Error("Store.IsEnabled() = true after Disable()")
	}
	if got := s.History("123"); len(got) != 0 {
		t.Errorf("Store.History() has %d entries after Disable(), want 0", len(got))
	}

	// disabling an unknown channel is a no-op
	s.Disable("456")
}

func TestStore_ReEnableResetsHistory(t *testing.T) {
	s := NewStore()
	s.Enable("123")
	s.AppendTurn("123", "hi", "hello")

	s.Enable("123")
	if got := s.History("123"); len(got) != 0 {
		t.Errorf("Store.History() has %d entries after re-Enable(), want 0", len(got))
	}
}

func TestStore_AppendTurnTruncation(t *testing.T) {
	tests := []struct {
		name      string
		pairs     int
		wantLen   int
		wantFirst string
	}{
		{
			name:      "under the cap",
			pairs:     3,
			wantLen:   6,
			wantFirst: "user 0",
		},
		{
			name:      "at the cap",
			pairs:     5,
			wantLen:   10,
			wantFirst: "user 0",
		},
		{
			name:      "over the cap drops oldest",
			pairs:     7,
			wantLen:   10,
			wantFirst: "user 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Enable("123")
			for i := 0; i < tt.pairs; i++ {
				s.AppendTurn("123", fmt.Sprintf("user %d", i), fmt.Sprintf("bot %d", i))
			}

			got := s.History("123")
			if len(got) != tt.wantLen {
				t.Fatalf("Store.History() len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0].Content != tt.wantFirst {
				t.Errorf("Store.History()[0].Content = %q, want %q", got[0].Content, tt.wantFirst)
			}
			// pairs stay in relative order, user before assistant
			for i := 0; i < len(got); i += 2 {
				if got[i].Role != RoleUser || got[i+1].Role != RoleAssistant {
					t.Errorf("Store.History()[%d:%d] roles = %v %v, want user then assistant", i, i+2, got[i].Role, got[i+1].Role)
				}
			}
		})
	}
}

func TestStore_AppendTurnDisabledChannel(t *testing.T) {
	s := NewStore()
	s.AppendTurn("123", "hi", "hello")
	if got := s.History("123"); len(got) != 0 {
		t.Errorf("Store.History() has %d entries for a disabled channel, want 0", len(got))
	}
}

func TestStore_PersonaDecoupledFromSession(t *testing.T) {
	s := NewStore()

	// persona can be set without the channel ever being enabled
	s.SetPersona("123", "Sheldon")
	if got := s.PersonaName("123"); got != "Sheldon" {
		t.Errorf("Store.PersonaName() = %q, want %q", got, "Sheldon")
	}
	if s.IsEnabled("123") {
		t.Error("Store.IsEnabled() = true after SetPersona() only")
	}

	// setting it twice is the same as once
	s.SetPersona("123", "Sheldon")
	if got := s.PersonaName("123"); got != "Sheldon" {
		t.Errorf("Store.PersonaName() = %q after repeated set, want %q", got, "Sheldon")
	}

	// disable does not clear the persona
	s.Enable("123")
	s.Disable("123")
	if got := s.PersonaName("123"); got != "Sheldon" {
		t.Errorf("Store.PersonaName() = %q after Disable(), want %q", got, "Sheldon")
	}
}

func TestStore_HistoryReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Enable("123")
	s.AppendTurn("123", "hi", "hello")

	got := s.History("123")
	got[0].Content = "mutated"

	if s.History("123")[0].Content != "hi" {
		t.Error("mutating the returned history changed the store")
	}
}
