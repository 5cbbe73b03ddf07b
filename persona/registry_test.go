package persona

import "testing"

func TestLoad(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	defs := r.List()
	if len(defs) == 0 {
		t.Fatal("Load() produced an empty registry")
	}
	for _, d := range defs {
		if d.Name == "" || d.Prompt == "" || d.Icon == "" {
			t.Errorf("persona %+v is missing a field", d)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	def, ok := r.Get("Sheldon")
	if !ok {
		t.Fatal("Registry.Get(Sheldon) not found")
	}
	if def.Name != "Sheldon" {
		t.Errorf("Registry.Get(Sheldon).Name = %q", def.Name)
	}

	if _, ok := r.Get("nobody"); ok {
		t.Error("Registry.Get(nobody) = true, want false")
	}
}

func TestRegistry_Prompt(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name        string
		persona     string
		wantDefault bool
	}{
		{
			name:        "known persona",
			persona:     "Hanabi",
			wantDefault: false,
		},
		{
			name:        "unknown persona falls back",
			persona:     "nobody",
			wantDefault: true,
		},
		{
			name:        "unset persona falls back",
			persona:     "",
			wantDefault: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Prompt(tt.persona)
			if (got == DefaultPrompt) != tt.wantDefault {
				t.Errorf("Registry.Prompt(%q) = %q, wantDefault %v", tt.persona, got, tt.wantDefault)
			}
		})
	}
}
