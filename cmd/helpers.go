package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/llm"
	"github.com/meera/courseforge/internal/store"
)

// configFilePath resolves the optional YAML config file location:
// $XDG_CONFIG_HOME/courseforge/config.yaml, falling back to
// ~/.config/courseforge/config.yaml.
func configFilePath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "courseforge", "config.yaml"), nil
}

// newLLMProvider builds the configured provider. COURSEFORGE_* env vars
// take precedence, then the config file, then discovery of standard
// provider key vars (GEMINI_API_KEY, OPENAI_API_KEY, ...).
func newLLMProvider(ctx context.Context, events store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if path, err := configFilePath(); err == nil {
		cfg, err = llm.LoadConfigFile(cfg, path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	return llm.NewProvider(ctx, cfg, events)
}

// snapshotCourse saves the course tree to the store before a mutation so
// a bad edit can be rolled back by hand. Snapshot failures never block
// the command.
func snapshotCourse(ctx context.Context, snaps store.SnapshotRepo, c *coursetree.Course, label string) {
	raw, err := json.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot course: %v\n", err)
		return
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot course: %v\n", err)
		return
	}

	err = snaps.Save(ctx, &store.CourseSnapshot{
		CourseID: c.ID,
		Label:    label,
		Data:     data,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
	}
}

// recordTransitionEvent appends a transition to the store, warning on
// failure rather than aborting.
func recordTransitionEvent(ctx context.Context, events store.EventRepo, data store.TransitionEventData) {
	if err := events.AppendTransition(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log transition event: %v\n", err)
	}
}
