// Package layout derives the on-disk paths of a filter project.
//
// A filter project keeps all of its state under a .filter directory inside
// the project root:
//
//	<root>/.filter/
//	  config.yml                     project configuration record
//	  README.md
//	  stories/<PREFIX>-<N>.md        one markdown file per story
//	  kanban/<stage>/<PREFIX>-<N>.md symlink -> ../../stories/<PREFIX>-<N>.md
//
// The location of a story's symlink under kanban/ is the authoritative
// record of its current stage; the story file itself carries no stage field.
package layout

import "path/filepath"

// FilterDirName is the name of the state directory inside a project root.
const FilterDirName = ".filter"

// DefaultStages returns the fixed default kanban workflow stages, in order.
// Returned as a fresh slice so callers can store it in a mutable config.
func DefaultStages() []string {
	return []string{"planning", "in-progress", "testing", "pr", "complete"}
}

// Layout contains the filesystem paths of a single filter project.
type Layout struct {
	// ProjectPath is the project root directory.
	ProjectPath string

	// FilterDir is the .filter state directory.
	FilterDir string

	// ConfigPath is the config.yml configuration record.
	ConfigPath string

	// ReadmePath is the informational README inside the state directory.
	ReadmePath string

	// StoriesDir holds one markdown file per story.
	StoriesDir string

	// KanbanDir holds one subdirectory per workflow stage.
	KanbanDir string
}

// New computes the layout for a project rooted at projectPath.
func New(projectPath string) Layout {
	filterDir := filepath.Join(projectPath, FilterDirName)
	return Layout{
		ProjectPath: projectPath,
		FilterDir:   filterDir,
		ConfigPath:  filepath.Join(filterDir, "config.yml"),
		ReadmePath:  filepath.Join(filterDir, "README.md"),
		StoriesDir:  filepath.Join(filterDir, "stories"),
		KanbanDir:   filepath.Join(filterDir, "kanban"),
	}
}

// StageDir returns the kanban directory for a stage.
func (l Layout) StageDir(stage string) string {
	return filepath.Join(l.KanbanDir, stage)
}

// StoryFile returns the path of a story's markdown file.
func (l Layout) StoryFile(storyID string) string {
	return filepath.Join(l.StoriesDir, storyID+".md")
}

// StageLink returns the path of a story's symlink inside a stage directory.
func (l Layout) StageLink(stage, storyID string) string {
	return filepath.Join(l.StageDir(stage), storyID+".md")
}

// StoryLinkTarget returns the relative symlink target used inside stage
// directories. Relative so the whole .filter tree can be moved or archived
// without breaking the kanban index.
func StoryLinkTarget(storyID string) string {
	return "../../stories/" + storyID + ".md"
}
