package project

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/filter/internal/clock"
	"github.com/danieljhkim/filter/internal/fsops"
	"github.com/danieljhkim/filter/internal/layout"
)

var testTime = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	projectDir := filepath.Join(t.TempDir(), "myapp")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(fsops.NewRealFS(), clock.NewFakeClock(testTime), projectDir, logger)
}

func TestManager_Create(t *testing.T) {
	mgr := newTestManager(t)

	msg, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.Contains(msg, "created successfully") {
		t.Errorf("Create() message = %q, want success message", msg)
	}

	// Full skeleton: stories, kanban, one directory per default stage.
	l := mgr.Layout()
	wantDirs := []string{l.FilterDir, l.StoriesDir, l.KanbanDir}
	for _, stage := range layout.DefaultStages() {
		wantDirs = append(wantDirs, l.StageDir(stage))
	}
	for _, dir := range wantDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s to exist", dir)
		}
	}

	// Configuration record and README.
	data, err := os.ReadFile(l.ConfigPath)
	if err != nil {
		t.Fatalf("expected config.yml: %v", err)
	}
	for _, want := range []string{"project_name: myapp", "prefix: MYAPP", "last_story_number: 0"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config.yml missing %q:\n%s", want, data)
		}
	}
	if _, err := os.Stat(l.ReadmePath); err != nil {
		t.Errorf("expected README.md: %v", err)
	}
}

func TestManager_Create_AlreadyExists(t *testing.T) {
	mgr := newTestManager(t)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// Drop a marker so we can prove the second call mutates nothing.
	marker := filepath.Join(mgr.Layout().StoriesDir, "marker.md")
	if err := os.WriteFile(marker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := mgr.Create()
	if err == nil {
		t.Fatal("second Create() expected error, got nil")
	}
	if !errors.Is(err, ErrProjectExists) {
		t.Errorf("second Create() error = %v, want ErrProjectExists", err)
	}

	if _, err := os.Stat(marker); err != nil {
		t.Errorf("second Create() mutated existing project: %v", err)
	}
}

func TestManager_Exists(t *testing.T) {
	mgr := newTestManager(t)

	if mgr.Exists() {
		t.Error("Exists() = true before Create()")
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	if !mgr.Exists() {
		t.Error("Exists() = false after Create()")
	}
}

func TestManager_Delete(t *testing.T) {
	t.Run("no project", func(t *testing.T) {
		mgr := newTestManager(t)

		_, err := mgr.Delete(false)
		if !errors.Is(err, ErrNoProject) {
			t.Errorf("Delete() error = %v, want ErrNoProject", err)
		}
	})

	t.Run("refused with stories and no force", func(t *testing.T) {
		mgr := newTestManager(t)
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}

		story := filepath.Join(mgr.Layout().StoriesDir, "MYAPP-1.md")
		if err := os.WriteFile(story, []byte("# MYAPP-1: test\n"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := mgr.Delete(false)
		if !errors.Is(err, ErrHasStories) {
			t.Errorf("Delete() error = %v, want ErrHasStories", err)
		}
		if !strings.Contains(err.Error(), "1 ") {
			t.Errorf("Delete() error should report the story count: %v", err)
		}

		// Everything stays intact.
		if _, err := os.Stat(story); err != nil {
			t.Errorf("refused Delete() removed files: %v", err)
		}
	})

	t.Run("force removes everything", func(t *testing.T) {
		mgr := newTestManager(t)
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}

		story := filepath.Join(mgr.Layout().StoriesDir, "MYAPP-1.md")
		if err := os.WriteFile(story, []byte("# MYAPP-1: test\n"), 0644); err != nil {
			t.Fatal(err)
		}

		msg, err := mgr.Delete(true)
		if err != nil {
			t.Fatalf("Delete(force) error = %v", err)
		}
		if !strings.Contains(msg, "deleted successfully") {
			t.Errorf("Delete(force) message = %q", msg)
		}

		if _, err := os.Stat(mgr.Layout().FilterDir); !os.IsNotExist(err) {
			t.Error("Delete(force) left the state directory behind")
		}
	})

	t.Run("empty project without force", func(t *testing.T) {
		mgr := newTestManager(t)
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}

		if _, err := mgr.Delete(false); err != nil {
			t.Errorf("Delete() on empty project error = %v", err)
		}
	})
}

func TestManager_Info(t *testing.T) {
	mgr := newTestManager(t)

	if info := mgr.Info(); info != nil {
		t.Errorf("Info() = %+v before Create(), want nil", info)
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	// Two stories, one linked to planning and one to testing.
	l := mgr.Layout()
	for i, stage := range []string{"planning", "testing"} {
		id := layout.StoryID("MYAPP", i+1)
		if err := os.WriteFile(l.StoryFile(id), []byte("# "+id+": s\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Symlink(layout.StoryLinkTarget(id), l.StageLink(stage, id)); err != nil {
			t.Fatal(err)
		}
	}

	info := mgr.Info()
	if info == nil {
		t.Fatal("Info() = nil, want project info")
	}

	if info.TotalStories != 2 {
		t.Errorf("TotalStories = %d, want 2", info.TotalStories)
	}
	if info.StageCounts["planning"] != 1 || info.StageCounts["testing"] != 1 {
		t.Errorf("StageCounts = %v, want planning:1 testing:1", info.StageCounts)
	}
	if info.StageCounts["complete"] != 0 {
		t.Errorf("StageCounts[complete] = %d, want 0", info.StageCounts["complete"])
	}
	if info.ProjectPath != l.ProjectPath || info.FilterPath != l.FilterDir {
		t.Errorf("paths = %q/%q, want %q/%q", info.ProjectPath, info.FilterPath, l.ProjectPath, l.FilterDir)
	}
}
