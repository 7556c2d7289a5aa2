package layout

import (
	"strings"
	"testing"
)

func TestDerivePrefix(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		want        string
	}{
		{
			name:        "long name truncated",
			projectName: "filter",
			want:        "FILTE",
		},
		{
			name:        "short name padded",
			projectName: "app",
			want:        "APPXX",
		},
		{
			name:        "trailing separator and digits stripped",
			projectName: "project_2024",
			want:        "PROJE",
		},
		{
			name:        "interior separators kept",
			projectName: "app-v2-final",
			want:        "APP-V",
		},
		{
			name:        "trailing letters mean nothing is stripped",
			projectName: "my-app",
			want:        "MY-AP",
		},
		{
			name:        "upper case input",
			projectName: "MyProject",
			want:        "MYPRO",
		},
		{
			name:        "name that is only digits",
			projectName: "2024",
			want:        "XXXXX",
		},
		{
			name:        "empty name",
			projectName: "",
			want:        "XXXXX",
		},
		{
			name:        "exactly five characters",
			projectName: "tasks",
			want:        "TASKS",
		},
		{
			name:        "trailing hyphen with digits",
			projectName: "release-v-31",
			want:        "RELEA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePrefix(tt.projectName)
			if got != tt.want {
				t.Errorf("DerivePrefix(%q) = %q, want %q", tt.projectName, got, tt.want)
			}
		})
	}
}

func TestDerivePrefix_AlwaysFiveUpperCase(t *testing.T) {
	names := []string{"filter", "a", "ab", "abc", "abcd", "abcde", "abcdef", "x_1", "foo-bar-baz", "2024", ""}

	for _, name := range names {
		prefix := DerivePrefix(name)
		if len(prefix) != 5 {
			t.Errorf("DerivePrefix(%q) = %q, want length 5, got %d", name, prefix, len(prefix))
		}
		if prefix != strings.ToUpper(prefix) {
			t.Errorf("DerivePrefix(%q) = %q, want upper-case", name, prefix)
		}
	}
}

func TestStoryID(t *testing.T) {
	if got := StoryID("FILTE", 1); got != "FILTE-1" {
		t.Errorf("StoryID(FILTE, 1) = %q, want FILTE-1", got)
	}
	if got := StoryID("APPXX", 42); got != "APPXX-42" {
		t.Errorf("StoryID(APPXX, 42) = %q, want APPXX-42", got)
	}
}
