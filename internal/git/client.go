package git

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// field and record separators for parsing git log output
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(output))}, nil
}

// NewClientAt creates a git client rooted at the given directory
func NewClientAt(dir string) (*Client, error) {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(output))}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// git runs a git command in the repository root and returns its output
func (c *Client) git(args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", c.gitRoot}, args...)
	cmd := exec.Command("git", fullArgs...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return output, nil
}

// GetCurrentBranch returns the name of the current git branch
func (c *Client) GetCurrentBranch() (string, error) {
	output, err := c.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CheckoutBranch checks out the specified branch
func (c *Client) CheckoutBranch(name string) error {
	if _, err := c.git("checkout", name); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// Fetch fetches from the given remote
func (c *Client) Fetch(remote string) error {
	if _, err := c.git("fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

// Pull pulls the current branch from its upstream
func (c *Client) Pull() error {
	if _, err := c.git("pull", "--ff-only"); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// GetRemoteName returns the default remote name (usually "origin")
func (c *Client) GetRemoteName() (string, error) {
	output, err := c.git("remote")
	if err != nil {
		return "", fmt.Errorf("failed to list remotes: %w", err)
	}
	remotes := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(remotes) == 0 || remotes[0] == "" {
		return "", fmt.Errorf("no git remote configured")
	}
	return remotes[0], nil
}

// GetRemoteURL returns the URL of the given remote
func (c *Client) GetRemoteURL(remote string) (string, error) {
	output, err := c.git("remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get URL for remote %s: %w", remote, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitsSince returns commits on the given branch newer than the since
// boundary, newest first. The since value is passed to git's own date
// parser, so both ISO timestamps and phrases like "2 weeks ago" work.
func (c *Client) CommitsSince(branch string, since string) ([]Commit, error) {
	output, err := c.git(
		"log", branch,
		"--since="+since,
		"--date=iso-strict",
		"--pretty=format:%H"+fieldSep+"%cI"+fieldSep+"%an"+fieldSep+"%B"+recordSep,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits on %s: %w", branch, err)
	}
	return parseLog(string(output))
}

// parseLog parses the %H/%cI/%an/%B record stream produced by CommitsSince
func parseLog(raw string) ([]Commit, error) {
	var commits []Commit
	for _, record := range strings.Split(raw, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if strings.TrimSpace(record) == "" {
			continue
		}
		parts := strings.SplitN(record, fieldSep, 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("malformed git log record: %q", record)
		}
		date, err := time.Parse(time.RFC3339, parts[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit date %q: %w", parts[1], err)
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Date:    date,
			Author:  parts[2],
			Message: strings.TrimSpace(parts[3]),
		})
	}
	return commits, nil
}

// TagDate returns the commit date of the given tag
func (c *Client) TagDate(tag string) (time.Time, error) {
	output, err := c.git("log", "-1", "--format=%cI", tag)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve tag %s: %w", tag, err)
	}
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(string(output)))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date for tag %s: %w", tag, err)
	}
	return date, nil
}

// ListTags returns all tags, most recently created first
func (c *Client) ListTags() ([]string, error) {
	output, err := c.git("tag", "--sort=-creatordate")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}
