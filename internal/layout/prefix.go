package layout

import (
	"fmt"
	"regexp"
	"strings"
)

// prefixLen is the fixed length of every story prefix.
const prefixLen = 5

// trailingSuffix matches a trailing run of separators and digits, e.g. the
// "_2024" in "project_2024". Interior runs are left alone.
var trailingSuffix = regexp.MustCompile(`[-_\d]+$`)

// DerivePrefix generates a story ID prefix from a project name.
//
// The name is lower-cased after stripping any trailing separator/digit run,
// then truncated to five characters and upper-cased, or right-padded with
// 'X' when shorter. "filter" becomes "FILTE", "app" becomes "APPXX".
func DerivePrefix(projectName string) string {
	cleaned := trailingSuffix.ReplaceAllString(strings.ToLower(projectName), "")

	if len(cleaned) >= prefixLen {
		return strings.ToUpper(cleaned[:prefixLen])
	}
	return strings.ToUpper(cleaned) + strings.Repeat("X", prefixLen-len(cleaned))
}

// StoryID formats a full story identifier from a prefix and sequence number.
func StoryID(prefix string, number int) string {
	return fmt.Sprintf("%s-%d", prefix, number)
}
