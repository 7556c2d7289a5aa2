// Package project manages the filter project skeleton and kanban
// workflow directories.
//
// The Manager owns the lifecycle of the .filter state directory: creating
// the fixed subdirectory skeleton, tearing it down, and reporting aggregate
// project metadata. Story-level operations live in the story package, which
// depends only on the on-disk layout the Manager creates.
package project

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/danieljhkim/filter/internal/clock"
	"github.com/danieljhkim/filter/internal/config"
	"github.com/danieljhkim/filter/internal/fsops"
	"github.com/danieljhkim/filter/internal/layout"
)

// Manager creates, inspects, and destroys filter project structures.
type Manager struct {
	fs     fsops.FS
	clock  clock.Clock
	layout layout.Layout
	cfg    *config.Store
	logger *slog.Logger
}

// NewManager creates a Manager for the project rooted at projectPath.
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

// Layout returns the on-disk layout of the project.
func (m *Manager) Layout() layout.Layout {
	return m.layout
}

// Info describes an existing filter project.
type Info struct {
	// ProjectPath is the project root directory.
	ProjectPath string `json:"projectPath"`

	// FilterPath is the .filter state directory.
	FilterPath string `json:"filterPath"`

	// TotalStories is the number of entries in the stories directory.
	TotalStories int `json:"totalStories"`

	// StageCounts maps each existing stage directory to its entry count.
	StageCounts map[string]int `json:"stageCounts"`

	// CreatedAt is the state directory's timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// Create creates the .filter directory structure with kanban workflow
// directories, the initial configuration record, and a README.
//
// Fails without mutation if the state directory already exists. Any
// filesystem error aborts with the underlying cause; partially created
// directories are left as-is.
func (m *Manager) Create() (string, error) {
	m.logger.Info("creating filter project structure", "path", m.layout.FilterDir)

	if exists, _ := m.fs.Exists(m.layout.FilterDir); exists {
		m.logger.Warn("filter directory already exists", "path", m.layout.FilterDir)
		return "", fmt.Errorf("%w at %s", ErrProjectExists, m.layout.FilterDir)
	}

	dirs := []string{
		m.layout.FilterDir,
		m.layout.KanbanDir,
		m.layout.StoriesDir,
	}
	for _, stage := range layout.DefaultStages() {
		dirs = append(dirs, m.layout.StageDir(stage))
	}

	for _, dir := range dirs {
		if err := m.fs.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create project structure: %w", err)
		}
		m.logger.Debug("created directory", "path", dir)
	}

	cfg := config.Default(m.layout.ProjectPath, m.clock.Now())
	if err := m.cfg.Save(cfg); err != nil {
		return "", fmt.Errorf("failed to create project structure: %w", err)
	}

	if err := m.fs.WriteFile(m.layout.ReadmePath, []byte(readmeContent), 0644); err != nil {
		return "", fmt.Errorf("failed to create project structure: %w", err)
	}

	m.logger.Info("created filter project structure", "path", m.layout.FilterDir)
	return fmt.Sprintf("Filter project created successfully at %s", m.layout.FilterDir), nil
}

// Delete removes the .filter directory and all its contents.
//
// Without force, deletion is refused when the stories directory is
// non-empty, reporting the story count. Removal errors are reported
// without partial cleanup guarantees.
func (m *Manager) Delete(force bool) (string, error) {
	m.logger.Info("deleting filter project structure", "path", m.layout.FilterDir, "force", force)

	if exists, _ := m.fs.Exists(m.layout.FilterDir); !exists {
		return "", fmt.Errorf("%w at %s", ErrNoProject, m.layout.FilterDir)
	}

	if !force {
		if count := m.storyCount(); count > 0 {
			m.logger.Warn("active stories found", "count", count)
			return "", fmt.Errorf("%w: %d stories present; use --force to delete anyway", ErrHasStories, count)
		}
	}

	if err := m.fs.RemoveAll(m.layout.FilterDir); err != nil {
		return "", fmt.Errorf("failed to delete project structure: %w", err)
	}

	m.logger.Info("deleted filter project", "path", m.layout.FilterDir)
	return fmt.Sprintf("Filter project deleted successfully from %s", m.layout.ProjectPath), nil
}

// Exists reports whether the state directory exists and is a directory.
func (m *Manager) Exists() bool {
	info, err := m.fs.Lstat(m.layout.FilterDir)
	exists := err == nil && info.IsDir()
	m.logger.Debug("project exists check", "path", m.layout.FilterDir, "exists", exists)
	return exists
}

// Info returns summary information about the project, or nil when no
// project exists or inspection hits a filesystem error.
func (m *Manager) Info() *Info {
	if !m.Exists() {
		return nil
	}

	stat, err := m.fs.Lstat(m.layout.FilterDir)
	if err != nil {
		m.logger.Error("failed to get project info", "error", err)
		return nil
	}

	stageCounts := make(map[string]int)
	if exists, _ := m.fs.Exists(m.layout.KanbanDir); exists {
		entries, err := m.fs.ReadDir(m.layout.KanbanDir)
		if err != nil {
			m.logger.Error("failed to get project info", "error", err)
			return nil
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			links, err := m.fs.ReadDir(m.layout.StageDir(entry.Name()))
			if err != nil {
				m.logger.Error("failed to get project info", "error", err)
				return nil
			}
			stageCounts[entry.Name()] = len(links)
		}
	}

	return &Info{
		ProjectPath:  m.layout.ProjectPath,
		FilterPath:   m.layout.FilterDir,
		TotalStories: m.storyCount(),
		StageCounts:  stageCounts,
		CreatedAt:    stat.ModTime(),
	}
}

// storyCount counts entries directly under the stories directory.
// Returns 0 when the directory is missing or unreadable.
func (m *Manager) storyCount() int {
	entries, err := m.fs.ReadDir(m.layout.StoriesDir)
	if err != nil {
		return 0
	}
	return len(entries)
}
