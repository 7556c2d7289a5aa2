// Package gh wraps the GitHub CLI (gh) for the repository operations
// filter's surrounding tooling needs: install status and cloning.
package gh

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// notInstalledMsg is returned whenever the gh binary cannot be found.
const notInstalledMsg = "GitHub CLI (gh) is not installed. Please install it from https://cli.github.com/"

// Client provides an abstraction for GitHub CLI operations.
type Client interface {
	// IsInstalled reports whether the gh binary is available,
	// with a human-readable status message.
	IsInstalled() (bool, string)

	// Clone clones a repository into dest using gh.
	Clone(url, dest string) (bool, string)
}

// RealClient implements Client by invoking the gh binary.
type RealClient struct {
	logger *slog.Logger
}

// NewRealClient creates a new RealClient.
func NewRealClient(logger *slog.Logger) *RealClient {
	return &RealClient{logger: logger}
}

// IsInstalled runs `gh --version` and reports the result.
func (c *RealClient) IsInstalled() (bool, string) {
	c.logger.Info("checking GitHub CLI installation status")

	out, err := exec.Command("gh", "--version").Output()
	if err != nil {
		return false, c.describeFailure(err, "GitHub CLI command failed")
	}

	version := strings.TrimSpace(string(out))
	c.logger.Info("GitHub CLI found", "version_info", version)
	return true, fmt.Sprintf("GitHub CLI (gh) is installed: %s", version)
}

// Clone runs `gh repo clone url dest`.
func (c *RealClient) Clone(url, dest string) (bool, string) {
	c.logger.Info("cloning repository", "url", url, "dest", dest)

	// Output (not Run) so a failed invocation carries its stderr.
	if _, err := exec.Command("gh", "repo", "clone", url, dest).Output(); err != nil {
		return false, c.describeFailure(err, "Failed to clone repository")
	}

	c.logger.Info("repository cloned successfully", "dest", dest)
	return true, fmt.Sprintf("Repository cloned successfully to %s", dest)
}

// describeFailure turns an exec error into a status message, distinguishing
// a missing gh binary from a failed gh invocation.
func (c *RealClient) describeFailure(err error, prefix string) string {
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		c.logger.Warn("GitHub CLI not found in PATH")
		return notInstalledMsg
	}

	detail := "Unknown error"
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		detail = strings.TrimSpace(string(exitErr.Stderr))
	}
	c.logger.Error("GitHub CLI invocation failed", "error", err)
	return fmt.Sprintf("%s: %s", prefix, detail)
}
