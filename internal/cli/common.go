package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/filter/internal/clock"
	"github.com/danieljhkim/filter/internal/fsops"
	"github.com/danieljhkim/filter/internal/gh"
	"github.com/danieljhkim/filter/internal/project"
	"github.com/danieljhkim/filter/internal/story"
)

// newLogger builds the logger injected into managers. Warnings and errors
// only, unless --verbose is set.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolvePath resolves a user-supplied project path to an absolute path.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return abs, nil
}

// newProjectManager creates a ProjectManager with real implementations.
func newProjectManager(path string) (*project.Manager, error) {
	abs, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return project.NewManager(fsops.NewRealFS(), &clock.RealClock{}, abs, newLogger()), nil
}

// newStoryManager creates a StoryManager with real implementations.
func newStoryManager(path string) (*story.Manager, error) {
	abs, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return story.NewManager(fsops.NewRealFS(), &clock.RealClock{}, abs, newLogger()), nil
}

// newGHClient creates the GitHub CLI collaborator.
func newGHClient() gh.Client {
	return gh.NewRealClient(newLogger())
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// promptConfirm prompts the user for a yes/no confirmation.
func promptConfirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
