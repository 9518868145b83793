package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bjulian5/changelog/internal/git"
)

// NewTestRepo creates a git repository in a temporary directory with one
// initial commit, and returns a client for it.
func NewTestRepo(t *testing.T) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	runGit(t, tempDir, "init", "--initial-branch=main")
	runGit(t, tempDir, "config", "user.name", "Test User")
	runGit(t, tempDir, "config", "user.email", "test@example.com")

	client, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	CreateCommit(t, client, "Initial commit", time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	return client
}

// CreateCommit creates a commit with the given message and author/committer
// date, and returns its hash.
func CreateCommit(t *testing.T, client *git.Client, message string, date time.Time) string {
	t.Helper()
	root := client.GitRoot()

	// One file per commit, named after the message for uniqueness
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == ' ' {
			return '-'
		}
		return r
	}, message)
	path := filepath.Join(root, fmt.Sprintf("file-%s.txt", name))
	require.NoError(t, os.WriteFile(path, []byte(message+"\n"), 0644))

	runGit(t, root, "add", ".")

	stamp := date.Format(time.RFC3339)
	cmd := exec.Command("git", "commit", "-m", message, "--date", stamp)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GIT_COMMITTER_DATE="+stamp)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git commit failed: %s", string(output))

	return strings.TrimSpace(runGit(t, root, "rev-parse", "HEAD"))
}

// CreateTag creates a lightweight tag at HEAD
func CreateTag(t *testing.T, client *git.Client, name string) {
	t.Helper()
	runGit(t, client.GitRoot(), "tag", name)
}

// SetRemote adds an "origin" remote with the given URL
func SetRemote(t *testing.T, client *git.Client, url string) {
	t.Helper()
	runGit(t, client.GitRoot(), "remote", "add", "origin", url)
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return string(output)
}
