// Package story manages story creation, deletion, listing, and kanban
// stage placement.
//
// The Manager operates on the on-disk layout the project package creates,
// but does not depend on its code: the .filter directory, the stories
// collection, and the kanban index are the shared contract. A story's
// current stage is recorded solely by the location of its symlink under
// kanban/; the story file never carries a stage field.
//
// The sequential ID counter lives in config.yml and is advanced with a
// load-increment-save sequence. That sequence is not atomic across
// concurrent callers; the contract assumes a single active caller at a
// time (two racing callers could both observe the same counter value).
package story

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/danieljhkim/filter/internal/clock"
	"github.com/danieljhkim/filter/internal/config"
	"github.com/danieljhkim/filter/internal/fsops"
	"github.com/danieljhkim/filter/internal/layout"
)

// Manager performs story lifecycle operations inside a filter project.
type Manager struct {
	fs     fsops.FS
	clock  clock.Clock
	layout layout.Layout
	cfg    *config.Store
	logger *slog.Logger
}

// NewManager creates a Manager for the project rooted at projectPath.
// The project skeleton must already exist for operations to succeed.
func NewManager(fs fsops.FS, clk clock.Clock, projectPath string, logger *slog.Logger) *Manager {
	l := layout.New(projectPath)
	return &Manager{
		fs:     fs,
		clock:  clk,
		layout: l,
		cfg:    config.NewStore(fs, clk, l, logger),
		logger: logger,
	}
}

// Info is one story as reported by List.
type Info struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Stage string `json:"stage"`
}

// ensureStructure verifies the state directory and its two required
// subdirectories exist. Every public operation calls this first.
func (m *Manager) ensureStructure() error {
	if exists, _ := m.fs.Exists(m.layout.FilterDir); !exists {
		return fmt.Errorf("%w at %s; run 'filter project create' first", ErrNoProject, m.layout.ProjectPath)
	}

	for _, dir := range []string{m.layout.StoriesDir, m.layout.KanbanDir} {
		if exists, _ := m.fs.Exists(dir); !exists {
			return fmt.Errorf("%w: missing required directory %s", ErrCorruptStructure, dir)
		}
	}
	return nil
}

// NextStoryNumber allocates the next story number and persists the updated
// counter immediately. Returns the number and the full story ID.
//
// The load-increment-save sequence is deliberately not guarded against
// concurrent invocation; see the package comment.
func (m *Manager) NextStoryNumber() (int, string, error) {
	cfg, err := m.cfg.Load()
	if err != nil {
		return 0, "", err
	}

	next := cfg.LastStoryNumber + 1
	storyID := layout.StoryID(cfg.Prefix, next)

	cfg.LastStoryNumber = next
	if err := m.cfg.Save(cfg); err != nil {
		return 0, "", err
	}

	m.logger.Info("generated next story ID", "story_id", storyID)
	return next, storyID, nil
}

// Create creates a new story with an auto-generated ID, writes its markdown
// file into the stories collection, and places its symlink in the given
// kanban stage. Returns a success message carrying the new ID.
//
// A story file written before a symlink failure is not rolled back.
func (m *Manager) Create(title, description, stage string) (string, error) {
	m.logger.Info("creating new story", "title", title, "stage", stage)

	if err := m.ensureStructure(); err != nil {
		return "", err
	}

	cfg, err := m.cfg.Load()
	if err != nil {
		return "", err
	}
	if !slices.Contains(cfg.KanbanStages, stage) {
		return "", fmt.Errorf("%w '%s'; valid stages: %s", ErrInvalidStage, stage, strings.Join(cfg.KanbanStages, ", "))
	}

	_, storyID, err := m.NextStoryNumber()
	if err != nil {
		return "", err
	}

	content := renderStory(storyID, title, description, m.clock.Now())
	storyFile := m.layout.StoryFile(storyID)
	if err := m.fs.WriteFile(storyFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to create story: %w", err)
	}
	m.logger.Info("created story file", "path", storyFile)

	link := m.layout.StageLink(stage, storyID)
	if err := m.fs.Symlink(layout.StoryLinkTarget(storyID), link); err != nil {
		return "", fmt.Errorf("failed to create story: %w", err)
	}
	m.logger.Info("created kanban symlink", "stage", stage, "link", link)

	return fmt.Sprintf("Created story %s: %s", storyID, title), nil
}

// Delete removes a story file and every kanban symlink referencing it.
// Links removed before a later failure stay removed.
func (m *Manager) Delete(storyID string) (string, error) {
	m.logger.Info("deleting story", "story_id", storyID)

	if err := m.ensureStructure(); err != nil {
		return "", err
	}
	if err := m.fs.ValidateIdentifier(storyID); err != nil {
		return "", fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	storyFile := m.layout.StoryFile(storyID)
	if exists, _ := m.fs.Exists(storyFile); !exists {
		return "", fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	cfg, err := m.cfg.Load()
	if err != nil {
		return "", err
	}

	removed, err := m.removeStageLinks(cfg.KanbanStages, storyID)
	if err != nil {
		return "", fmt.Errorf("failed to delete story: %w", err)
	}

	if err := m.fs.Remove(storyFile); err != nil {
		return "", fmt.Errorf("failed to delete story: %w", err)
	}
	m.logger.Info("deleted story file", "path", storyFile)

	msg := fmt.Sprintf("Deleted story %s", storyID)
	if len(removed) > 0 {
		msg += fmt.Sprintf(" (was in %s)", strings.Join(removed, ", "))
	}
	return msg, nil
}

// Move relocates a story's kanban symlink to the target stage, removing it
// from every stage it currently appears in first. The same relative-path
// symlink convention as Create is used.
func (m *Manager) Move(storyID, targetStage string) (string, error) {
	m.logger.Info("moving story", "story_id", storyID, "target_stage", targetStage)

	if err := m.ensureStructure(); err != nil {
		return "", err
	}
	if err := m.fs.ValidateIdentifier(storyID); err != nil {
		return "", fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	cfg, err := m.cfg.Load()
	if err != nil {
		return "", err
	}
	if !slices.Contains(cfg.KanbanStages, targetStage) {
		return "", fmt.Errorf("%w '%s'; valid stages: %s", ErrInvalidStage, targetStage, strings.Join(cfg.KanbanStages, ", "))
	}

	if exists, _ := m.fs.Exists(m.layout.StoryFile(storyID)); !exists {
		return "", fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	removed, err := m.removeStageLinks(cfg.KanbanStages, storyID)
	if err != nil {
		return "", fmt.Errorf("failed to move story: %w", err)
	}

	link := m.layout.StageLink(targetStage, storyID)
	if err := m.fs.Symlink(layout.StoryLinkTarget(storyID), link); err != nil {
		return "", fmt.Errorf("failed to move story: %w", err)
	}

	msg := fmt.Sprintf("Moved story %s", storyID)
	if len(removed) > 0 {
		msg += fmt.Sprintf(" from %s", strings.Join(removed, ", "))
	}
	msg += fmt.Sprintf(" to %s", targetStage)
	return msg, nil
}

// List returns stories in stage-iteration order, then per-stage directory
// order. An empty stage lists every configured stage in configured order.
//
// Returns an empty slice, never an error: a missing project or a
// filesystem failure during iteration yields no stories.
func (m *Manager) List(stage string) []Info {
	m.logger.Info("listing stories", "stage_filter", stage)

	if err := m.ensureStructure(); err != nil {
		m.logger.Warn("cannot list stories", "error", err)
		return []Info{}
	}

	cfg, err := m.cfg.Load()
	if err != nil {
		m.logger.Warn("cannot list stories", "error", err)
		return []Info{}
	}

	stages := cfg.KanbanStages
	if stage != "" {
		stages = []string{stage}
	}

	stories := []Info{}
	for _, s := range stages {
		entries, err := m.fs.ReadDir(m.layout.StageDir(s))
		if err != nil {
			// Stage directory missing or unreadable; skip it.
			continue
		}

		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			storyID := strings.TrimSuffix(entry.Name(), ".md")

			// Only symlinks into the stories collection count as
			// kanban placements.
			target, err := m.fs.Readlink(m.layout.StageLink(s, storyID))
			if err != nil || target != layout.StoryLinkTarget(storyID) {
				continue
			}

			storyFile := m.layout.StoryFile(storyID)
			if exists, _ := m.fs.Exists(storyFile); !exists {
				continue
			}

			stories = append(stories, Info{
				ID:    storyID,
				Title: m.extractTitle(storyFile),
				Stage: s,
			})
		}
	}

	m.logger.Debug("found stories", "count", len(stories))
	return stories
}

// ProjectConfig returns the loaded configuration, or nil when the project
// structure precondition fails.
func (m *Manager) ProjectConfig() *config.Config {
	if err := m.ensureStructure(); err != nil {
		return nil
	}
	cfg, err := m.cfg.Load()
	if err != nil {
		return nil
	}
	return cfg
}

// removeStageLinks removes the story's symlink from every listed stage,
// returning the stages a link was removed from.
func (m *Manager) removeStageLinks(stages []string, storyID string) ([]string, error) {
	var removed []string
	for _, stage := range stages {
		link := m.layout.StageLink(stage, storyID)
		if exists, _ := m.fs.Exists(link); !exists {
			continue
		}
		if err := m.fs.Remove(link); err != nil {
			return removed, err
		}
		removed = append(removed, stage)
		m.logger.Debug("removed kanban symlink", "stage", stage, "story_id", storyID)
	}
	return removed, nil
}
