package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags restores package-level flag variables between runs. Cobra only
// re-parses flags that appear in the args, so stale values would leak from
// one test execution into the next.
func resetFlags() {
	jsonOutput = false
	verbose = false
	projectDeleteForce = false
	storyProjectPath = "."
	storyCreateDescription = ""
	storyCreateStage = "planning"
	storyListStage = ""
	storyDeleteForce = false
}

// runCommand executes the root command with the given args and returns the
// combined cobra out/err streams.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	rootCmd.SetArgs(args)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// captureStdout runs fn while os.Stdout is redirected to a pipe and returns
// everything written to it. JSON output goes to os.Stdout directly rather
// than through cobra's writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// newProjectDir creates an empty "myapp" directory for project commands to
// target via a path argument or the -p flag.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "myapp")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestProjectCreateCommand(t *testing.T) {
	dir := newProjectDir(t)

	if _, err := runCommand(t, "project", "create", dir); err != nil {
		t.Fatalf("project create error = %v", err)
	}

	for _, rel := range []string{
		".filter/config.yml",
		".filter/README.md",
		".filter/stories",
		".filter/kanban/planning",
		".filter/kanban/complete",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s to exist after project create: %v", rel, err)
		}
	}

	t.Run("second create fails", func(t *testing.T) {
		if _, err := runCommand(t, "project", "create", dir); err == nil {
			t.Error("expected error creating project twice")
		}
	})
}

func TestProjectInfoCommand(t *testing.T) {
	t.Run("missing project", func(t *testing.T) {
		dir := newProjectDir(t)
		_, err := runCommand(t, "project", "info", dir)
		if err == nil || !strings.Contains(err.Error(), "no filter project found") {
			t.Errorf("project info error = %v, want 'no filter project found'", err)
		}
	})

	t.Run("json output", func(t *testing.T) {
		dir := newProjectDir(t)
		if _, err := runCommand(t, "project", "create", dir); err != nil {
			t.Fatal(err)
		}
		if _, err := runCommand(t, "story", "create", "first", "-p", dir); err != nil {
			t.Fatal(err)
		}

		output := captureStdout(t, func() {
			if _, err := runCommand(t, "project", "info", dir, "--json"); err != nil {
				t.Errorf("project info --json error = %v", err)
			}
		})

		var info struct {
			TotalStories int            `json:"totalStories"`
			StageCounts  map[string]int `json:"stageCounts"`
		}
		if err := json.Unmarshal([]byte(output), &info); err != nil {
			t.Fatalf("expected valid JSON, got error %v, output %q", err, output)
		}
		if info.TotalStories != 1 || info.StageCounts["planning"] != 1 {
			t.Errorf("info = %+v, want 1 story in planning", info)
		}
	})
}

func TestProjectDeleteCommand(t *testing.T) {
	dir := newProjectDir(t)
	if _, err := runCommand(t, "project", "create", dir); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "story", "create", "pending work", "-p", dir); err != nil {
		t.Fatal(err)
	}

	t.Run("refused with stories", func(t *testing.T) {
		if _, err := runCommand(t, "project", "delete", dir); err == nil {
			t.Error("expected delete to refuse while stories remain")
		}
		if _, err := os.Stat(filepath.Join(dir, ".filter")); err != nil {
			t.Errorf("refused delete should leave .filter intact: %v", err)
		}
	})

	t.Run("forced", func(t *testing.T) {
		if _, err := runCommand(t, "project", "delete", dir, "--force"); err != nil {
			t.Fatalf("project delete --force error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, ".filter")); !os.IsNotExist(err) {
			t.Error("expected .filter to be removed")
		}
	})
}

func TestStoryCommands_Workflow(t *testing.T) {
	dir := newProjectDir(t)
	if _, err := runCommand(t, "project", "create", dir); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "story", "create", "Add login page", "-p", dir, "-d", "Support SSO."); err != nil {
		t.Fatalf("story create error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".filter/stories/MYAPP-1.md")); err != nil {
		t.Fatalf("expected story file: %v", err)
	}
	if _, err := os.Lstat(filepath.Join(dir, ".filter/kanban/planning/MYAPP-1.md")); err != nil {
		t.Fatalf("expected planning symlink: %v", err)
	}

	t.Run("list json", func(t *testing.T) {
		output := captureStdout(t, func() {
			if _, err := runCommand(t, "story", "list", "-p", dir, "--json"); err != nil {
				t.Errorf("story list --json error = %v", err)
			}
		})

		var stories []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Stage string `json:"stage"`
		}
		if err := json.Unmarshal([]byte(output), &stories); err != nil {
			t.Fatalf("expected valid JSON, got error %v, output %q", err, output)
		}
		if len(stories) != 1 || stories[0].ID != "MYAPP-1" || stories[0].Stage != "planning" {
			t.Errorf("story list --json = %+v", stories)
		}
	})

	t.Run("move", func(t *testing.T) {
		if _, err := runCommand(t, "story", "move", "MYAPP-1", "testing", "-p", dir); err != nil {
			t.Fatalf("story move error = %v", err)
		}
		if _, err := os.Lstat(filepath.Join(dir, ".filter/kanban/testing/MYAPP-1.md")); err != nil {
			t.Errorf("expected symlink in testing: %v", err)
		}
		if _, err := os.Lstat(filepath.Join(dir, ".filter/kanban/planning/MYAPP-1.md")); !os.IsNotExist(err) {
			t.Error("expected symlink removed from planning")
		}
	})

	t.Run("move to invalid stage", func(t *testing.T) {
		_, err := runCommand(t, "story", "move", "MYAPP-1", "shipping", "-p", dir)
		if err == nil || !strings.Contains(err.Error(), "valid stages") {
			t.Errorf("story move error = %v, want stage list", err)
		}
	})

	t.Run("delete forced", func(t *testing.T) {
		if _, err := runCommand(t, "story", "delete", "MYAPP-1", "-p", dir, "-f"); err != nil {
			t.Fatalf("story delete error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, ".filter/stories/MYAPP-1.md")); !os.IsNotExist(err) {
			t.Error("expected story file removed")
		}
	})

	t.Run("delete missing story", func(t *testing.T) {
		if _, err := runCommand(t, "story", "delete", "MYAPP-1", "-p", dir, "-f"); err == nil {
			t.Error("expected error deleting a missing story")
		}
	})
}

func TestStoryCreateCommand_NoProject(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "story", "create", "orphan", "-p", dir)
	if err == nil || !strings.Contains(err.Error(), "filter project create") {
		t.Errorf("story create error = %v, want pointer to 'filter project create'", err)
	}
}

func TestStoryDeleteCommand_CancelledPrompt(t *testing.T) {
	dir := newProjectDir(t)
	if _, err := runCommand(t, "project", "create", dir); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "story", "create", "keep me", "-p", dir); err != nil {
		t.Fatal(err)
	}

	// Answer "n" to the confirmation prompt via a stdin pipe.
	oldStdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()
	_, _ = w.WriteString("n\n")
	_ = w.Close()

	if _, err := runCommand(t, "story", "delete", "MYAPP-1", "-p", dir); err != nil {
		t.Fatalf("cancelled delete should not error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".filter/stories/MYAPP-1.md")); err != nil {
		t.Errorf("cancelled delete should keep the story: %v", err)
	}
}

func TestStoryCommands_MissingArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"create without title", []string{"story", "create"}},
		{"delete without id", []string{"story", "delete"}},
		{"move without target", []string{"story", "move", "MYAPP-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCommand(t, tt.args...); err == nil {
				t.Errorf("expected arg validation error for %v", tt.args)
			}
		})
	}
}
