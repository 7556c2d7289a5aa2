package story

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// storyTemplate is the generated markdown document for a new story.
const storyTemplate = `# %s: %s

**Created:** %s
**Status:** Planning

## Description

%s

## Acceptance Criteria

- [ ] Define acceptance criteria for this story

## Notes

<!-- Add any additional notes or updates here -->

## Related Issues

<!-- Link to any related issues or stories -->
`

// renderStory produces the markdown content for a new story file.
func renderStory(storyID, title, description string, now time.Time) string {
	if description == "" {
		description = "No description provided."
	}
	return fmt.Sprintf(storyTemplate, storyID, title, now.UTC().Format(time.RFC3339), description)
}

// extractTitle pulls the title out of a story markdown file.
//
// The first line starting with "# " is the canonical title source: the text
// after the first ": " separator when one is present, otherwise the whole
// heading. When no heading can be read the story ID (the filename stem) is
// the fallback.
func (m *Manager) extractTitle(storyFile string) string {
	fallback := stem(storyFile)

	data, err := m.fs.ReadFile(storyFile)
	if err != nil {
		m.logger.Warn("failed to extract title", "path", storyFile, "error", err)
		return fallback
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "# ") {
			continue
		}
		heading := strings.TrimSpace(line[2:])
		if _, after, found := strings.Cut(heading, ": "); found {
			return after
		}
		return heading
	}
	return fallback
}

// stem returns the base name of a path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
