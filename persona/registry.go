// package persona holds the static persona table. Prompt text lives in
// an embedded yaml file so it stays out of control-flow code.
package persona

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is used for any channel that has no persona assigned.
const DefaultPrompt = "You are a helpful AI assistant."

//go:embed personas.yaml
var personasYAML []byte

// Definition is one selectable persona. The prompt prefixes every
// generation request for channels that picked it.
type Definition struct {
	Name    string `yaml:"name"`
	Icon    string `yaml:"icon"`
	Tagline string `yaml:"tagline"`
	Prompt  string `yaml:"prompt"`
}

// Registry is the read-only persona table, loaded once at startup and
// never mutated afterwards.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// Load parses the embedded persona table.
func Load() (*Registry, error) {
	var defs []Definition
	if err := yaml.Unmarshal(personasYAML, &defs); err != nil {
		return nil, fmt.Errorf("error parsing persona table: %w", err)
	}
	r := &Registry{
		defs:  defs,
		index: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if d.Name == "" || d.Prompt == "" {
			return nil, fmt.Errorf("persona entry %d is missing a name or prompt", i)
		}
		if _, ok := r.index[d.Name]; ok {
			return nil, fmt.Errorf("duplicate persona %q", d.Name)
		}
		r.index[d.Name] = i
	}
	return r, nil
}

// Get looks up a persona by name.
func (r *Registry) Get(name string) (Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// List returns the personas in table order.
func (r *Registry) List() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Prompt returns the named persona's system prompt. Unknown or empty
// names fall back to DefaultPrompt.
func (r *Registry) Prompt(name string) string {
	if i, ok := r.index[name]; ok {
		return r.defs[i].Prompt
	}
	return DefaultPrompt
}
