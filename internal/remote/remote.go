// Package remote resolves a git remote URL into the repository coordinates
// used for GitHub API calls and changelog links.
package remote

import (
	"fmt"
	"net/url"
	"strings"
)

// ExpectedHost is the only code-hosting domain this tool supports.
const ExpectedHost = "github.com"

// Info identifies the repository behind a git remote
type Info struct {
	Host    string
	Owner   string
	Repo    string
	WebBase string
}

// Slug returns the "owner/repo" form used as the config key
func (i Info) Slug() string {
	return i.Owner + "/" + i.Repo
}

// Resolve parses an SSH (git@host:owner/repo.git) or HTTPS
// (https://host/owner/repo.git) remote URL. It returns an error when the URL
// matches neither form or the host is not github.com.
func Resolve(rawURL string) (Info, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Info{}, fmt.Errorf("remote URL is empty")
	}

	var host, path string
	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return Info{}, fmt.Errorf("unsupported remote URL %q: %w", rawURL, err)
		}
		host = strings.ToLower(u.Hostname())
		path = u.Path
	} else {
		// scp-style: [user@]host:owner/repo(.git)
		hostPart, pathPart, ok := strings.Cut(rawURL, ":")
		if !ok || hostPart == "" || pathPart == "" || strings.ContainsAny(hostPart, "/\\") {
			return Info{}, fmt.Errorf("unsupported remote URL %q", rawURL)
		}
		if idx := strings.LastIndex(hostPart, "@"); idx >= 0 {
			hostPart = hostPart[idx+1:]
		}
		host = strings.ToLower(hostPart)
		path = pathPart
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	owner, repo, ok := strings.Cut(path, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return Info{}, fmt.Errorf("unsupported remote URL %q", rawURL)
	}

	if host != ExpectedHost {
		return Info{}, fmt.Errorf("unsupported remote host %q (only %s is supported)", host, ExpectedHost)
	}

	return Info{
		Host:    host,
		Owner:   owner,
		Repo:    repo,
		WebBase: fmt.Sprintf("https://%s/%s/%s", host, owner, repo),
	}, nil
}
