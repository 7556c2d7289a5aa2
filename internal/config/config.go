// Package config manages the per-project configuration record (config.yml).
//
// The record owns the story ID prefix and the sequential story counter.
// Loading is forgiving: a missing file is created from defaults, a partial
// file gains missing fields from defaults, and a corrupt file falls back to
// in-memory defaults without being overwritten. Saving is strict: losing a
// counter update risks duplicate story IDs, so save failures propagate.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/filter/internal/clock"
	"github.com/danieljhkim/filter/internal/fsops"
	"github.com/danieljhkim/filter/internal/layout"
)

// Config is the persisted configuration record of a filter project.
// Field order matters: it is the key order written to config.yml.
type Config struct {
	ProjectName     string   `yaml:"project_name"`
	Prefix          string   `yaml:"prefix"`
	LastStoryNumber int      `yaml:"last_story_number"`
	CreatedAt       string   `yaml:"created_at"`
	KanbanStages    []string `yaml:"kanban_stages"`
}

// Default returns the configuration defaults for a project.
// The project name is the base name of the project directory.
func Default(projectPath string, now time.Time) *Config {
	name := filepath.Base(projectPath)
	return &Config{
		ProjectName:     name,
		Prefix:          layout.DerivePrefix(name),
		LastStoryNumber: 0,
		CreatedAt:       now.UTC().Format(time.RFC3339),
		KanbanStages:    layout.DefaultStages(),
	}
}

// Store loads and saves the configuration record of a single project.
type Store struct {
	fs     fsops.FS
	clock  clock.Clock
	layout layout.Layout
	logger *slog.Logger
}

// NewStore creates a configuration store for the project described by l.
func NewStore(fs fsops.FS, clk clock.Clock, l layout.Layout, logger *slog.Logger) *Store {
	return &Store{fs: fs, clock: clk, layout: l, logger: logger}
}

// Load returns the project configuration.
//
// A missing config.yml is created from defaults and persisted immediately;
// the returned error is non-nil only if that initial save fails. A present
// record is parsed and any missing field is filled from defaults, so older
// records gain new fields transparently. A record that cannot be read or
// parsed yields in-memory defaults for this call only - the corrupt file is
// left untouched.
func (s *Store) Load() (*Config, error) {
	defaults := Default(s.layout.ProjectPath, s.clock.Now())

	exists, err := s.fs.Exists(s.layout.ConfigPath)
	if err == nil && !exists {
		s.logger.Info("creating new config file", "path", s.layout.ConfigPath)
		if err := s.Save(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	data, err := s.fs.ReadFile(s.layout.ConfigPath)
	if err != nil {
		s.logger.Error("failed to read config, using defaults", "path", s.layout.ConfigPath, "error", err)
		return defaults, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		s.logger.Error("failed to parse config, using defaults", "path", s.layout.ConfigPath, "error", err)
		return defaults, nil
	}

	mergeDefaults(&cfg, defaults)
	return &cfg, nil
}

// Save serializes the full record and overwrites config.yml.
func (s *Store) Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := s.fs.AtomicWrite(s.layout.ConfigPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	s.logger.Debug("saved config", "path", s.layout.ConfigPath)
	return nil
}

// mergeDefaults fills fields absent from a parsed record, field by field.
// LastStoryNumber is left alone: its zero value and its default coincide,
// and a parsed zero must stay zero.
func mergeDefaults(cfg, defaults *Config) {
	if cfg.ProjectName == "" {
		cfg.ProjectName = defaults.ProjectName
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaults.Prefix
	}
	if cfg.CreatedAt == "" {
		cfg.CreatedAt = defaults.CreatedAt
	}
	if cfg.KanbanStages == nil {
		cfg.KanbanStages = defaults.KanbanStages
	}
}
