package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridiron/internal/league"
)

var (
	ErrUnknownFormation = errors.New("unknown formation")
	ErrUnknownRoute     = errors.New("unknown route")
	ErrUnknownPlay      = errors.New("unknown play")
)

// LoadEngine loads engine tuning.
// Search order: dir/engine.yaml -> ~/.gridiron/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func LoadEngine(dir string) (EngineConfig, error) {
	cfg, err := load(dir, "engine", DefaultEngineConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Physics.MaxTicks <= 0 || cfg.Physics.TickSeconds <= 0 {
		return cfg, fmt.Errorf("config: engine: tick settings must be positive")
	}
	return cfg, nil
}

// LoadWeights loads the position weight table.
func LoadWeights(dir string) (Weights, error) {
	return load(dir, "weights", DefaultWeights)
}

// LoadTables loads formations, plays and routes together with the weight table,
// and validates cross references between them.
func LoadTables(dir string) (Tables, error) {
	t, err := load(dir, "playbook", func() Tables { return Tables{} })
	if err != nil {
		return t, err
	}
	if t.Weights, err = LoadWeights(dir); err != nil {
		return t, err
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// DefaultTables parses the embedded playbook and weights.
func DefaultTables() (Tables, error) {
	return LoadTables("")
}

// load applies the search order for one config file name.
func load[T any](dir, name string, fallback func() T) (T, error) {
	var cfg T
	filename := name + ".yaml"

	// Explicit directory first; a broken file there is an error, a missing one is not
	if dir != "" {
		path := filepath.Join(dir, filename)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
			return cfg, nil
		case !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridiron", "configs", filename)
}

// Validate checks that every play references a known offensive formation and
// every non-instruction assignment names a known route.
func (t Tables) Validate() error {
	if _, ok := t.Plays[t.DefaultPlay]; !ok {
		return fmt.Errorf("config: default play %q: %w", t.DefaultPlay, ErrUnknownPlay)
	}
	for _, key := range t.PlayKeys() {
		p := t.Plays[key]
		f, err := t.Formation(p.Formation)
		if err != nil {
			return fmt.Errorf("config: play %q: %w", key, err)
		}
		if f.Side != league.Offense {
			return fmt.Errorf("config: play %q: formation %q is not an offensive formation", key, p.Formation)
		}
		for slot, a := range p.Assignments {
			if !contains(f.Slots, slot) {
				return fmt.Errorf("config: play %q: slot %s not in formation %q", key, slot, p.Formation)
			}
			if IsInstruction(a) {
				continue
			}
			if _, err := t.Route(a); err != nil {
				return fmt.Errorf("config: play %q slot %s: %w", key, slot, err)
			}
		}
	}
	for name, f := range t.Formations {
		for slot, a := range f.Assignments {
			if IsInstruction(a) {
				continue
			}
			if _, err := t.Route(a); err != nil {
				return fmt.Errorf("config: formation %q slot %s: %w", name, slot, err)
			}
		}
	}
	return nil
}

// IsInstruction reports whether an assignment is a block/carry/rush/cover
// instruction rather than a route name.
func IsInstruction(a string) bool {
	switch a {
	case AssignBlock, AssignCarry, AssignRush, AssignCover:
		return true
	}
	return false
}

// Play looks up a play by key.
func (t Tables) Play(key string) (Play, bool) {
	p, ok := t.Plays[key]
	return p, ok
}

// Formation looks up a formation by name.
func (t Tables) Formation(name string) (Formation, error) {
	f, ok := t.Formations[name]
	if !ok {
		return Formation{}, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
	}
	return f, nil
}

// Route looks up a route by name.
func (t Tables) Route(name string) (Route, error) {
	r, ok := t.Routes[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return r, nil
}

// PlayKeys returns every play key, sorted.
func (t Tables) PlayKeys() []string {
	keys := make([]string, 0, len(t.Plays))
	for k := range t.Plays {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormationNames returns the formation names for one side, sorted.
func (t Tables) FormationNames(side league.Side) []string {
	var names []string
	for name, f := range t.Formations {
		if f.Side == side {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Assignment returns the play's instruction for a slot, falling back to the
// formation default and finally to blocking.
func (t Tables) Assignment(p Play, slot string) string {
	if a, ok := p.Assignments[slot]; ok {
		return a
	}
	if f, ok := t.Formations[p.Formation]; ok {
		if a, ok := f.Assignments[slot]; ok {
			return a
		}
	}
	return AssignBlock
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
