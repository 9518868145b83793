// Package release sequences a changelog run: resolve the remote, resolve
// credentials, plan the since boundary, collect commits, enrich them with PR
// metadata, compose the document, and record history for the next run.
package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bjulian5/changelog/internal/ai"
	"github.com/bjulian5/changelog/internal/changelog"
	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/git"
	"github.com/bjulian5/changelog/internal/history"
	"github.com/bjulian5/changelog/internal/remote"
	"github.com/bjulian5/changelog/internal/ui"
)

// GitClient defines the git operations needed by the release client
type GitClient interface {
	GetRemoteName() (string, error)
	GetRemoteURL(remote string) (string, error)
	Fetch(remote string) error
	CheckoutBranch(name string) error
	Pull() error
	CommitsSince(branch string, since string) ([]git.Commit, error)
	TagDate(tag string) (time.Time, error)
	ListTags() ([]string, error)
}

// GithubClient defines the GitHub operations needed by the release client.
// BatchGetPRs returns a partial result: only the PRs that could be fetched.
type GithubClient interface {
	BatchGetPRs(ctx context.Context, numbers []int) map[int]gh.PullRequestInfo
}

// NarrativeClient generates the narrative summary for a composed changelog
type NarrativeClient interface {
	Narrative(ctx context.Context, changelog string) (string, error)
}

// GithubFactory builds a GithubClient once the remote and token are known
type GithubFactory func(ctx context.Context, token string, info remote.Info) GithubClient

// NarrativeFactory builds a NarrativeClient once the API key is known
type NarrativeFactory func(apiKey string) NarrativeClient

// Prompts holds the interactive inputs the run may need. Nil funcs disable
// the corresponding prompt.
type Prompts struct {
	// Since asks for a since date, seeded with a default answer
	Since func(seed string) (string, error)
	// Secret reads a credential without echoing it
	Secret func(label string) (string, error)
	// SelectTag offers a tag picker; false means the user declined
	SelectTag func(tags []string) (string, bool)
}

// Options are the flags of a single changelog run
type Options struct {
	Since         string
	Tag           string
	Build         string
	Branch        string
	NoAI          bool
	IgnoreHistory bool
	NoHistory     bool
	SetNextSince  string
}

// Client runs the changelog generation workflow
type Client struct {
	git          GitClient
	newGithub    GithubFactory
	newNarrative NarrativeFactory
	prompts      Prompts

	// test seams
	now     func() time.Time
	workDir string
	stdout  io.Writer
	stderr  io.Writer
}

// NewClient creates a release client
func NewClient(gitClient GitClient, newGithub GithubFactory, newNarrative NarrativeFactory, prompts Prompts) *Client {
	return &Client{
		git:          gitClient,
		newGithub:    newGithub,
		newNarrative: newNarrative,
		prompts:      prompts,
		now:          time.Now,
		workDir:      ".",
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// Run executes one changelog generation pass. It returns the updated config
// (token prompts, history) for the caller to persist once.
func (c *Client) Run(ctx context.Context, cfg config.Config, opts Options) (config.Config, error) {
	remoteName, err := c.git.GetRemoteName()
	if err != nil {
		return cfg, err
	}
	rawURL, err := c.git.GetRemoteURL(remoteName)
	if err != nil {
		return cfg, err
	}
	info, err := remote.Resolve(rawURL)
	if err != nil {
		return cfg, err
	}

	cfg, githubToken, openaiKey, err := c.resolveTokens(cfg, opts.NoAI)
	if err != nil {
		return cfg, err
	}

	stored := cfg.History(info.Slug())
	plan, err := history.PlanSince(opts.Tag, opts.Since, stored, opts.IgnoreHistory, c.git, c.sincePrompt())
	if err != nil {
		return cfg, err
	}

	if err := c.git.Fetch(remoteName); err != nil {
		ui.Warningf("fetch failed, using local history: %v", err)
	}
	if err := c.git.CheckoutBranch(opts.Branch); err != nil {
		return cfg, err
	}
	if err := c.git.Pull(); err != nil {
		ui.Warningf("pull failed, using local history: %v", err)
	}

	commits, err := c.git.CommitsSince(opts.Branch, plan.Since)
	if err != nil {
		return cfg, err
	}
	commits = git.UniqueCommits(commits)

	prs := c.fetchPRDetails(ctx, githubToken, info, commits)
	body := changelog.Compose(commits, prs, info.WebBase)
	narrative := c.narrate(ctx, openaiKey, opts.NoAI, body)

	now := c.now()
	document := renderDocument(info, opts, plan, body, narrative, len(commits), now)

	path := filepath.Join(c.workDir, fmt.Sprintf("changelog-%s.md", now.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return cfg, fmt.Errorf("failed to write changelog: %w", err)
	}
	fmt.Fprint(c.stdout, document)
	fmt.Fprintf(c.stderr, "Saved changelog to %s\n", path)

	if !opts.NoHistory {
		updated := history.Update(stored, plan, opts.Branch, commits, now, opts.SetNextSince)
		cfg = cfg.WithHistory(info.Slug(), updated)
	}
	return cfg, nil
}

// resolveTokens resolves credentials (environment over stored config) and
// prompts on first use. Entered values land in the returned config so the
// caller's single save persists them.
func (c *Client) resolveTokens(cfg config.Config, noAI bool) (config.Config, string, string, error) {
	githubToken := cfg.ResolveGitHubToken()
	if githubToken == "" && c.prompts.Secret != nil {
		token, err := c.prompts.Secret("GitHub token (empty for anonymous access)")
		if err != nil {
			return cfg, "", "", err
		}
		githubToken = token
		cfg.Tokens.GitHubToken = token
	}

	var openaiKey string
	if !noAI {
		openaiKey = cfg.ResolveOpenAIKey()
		if openaiKey == "" && c.prompts.Secret != nil {
			key, err := c.prompts.Secret("OpenAI API key (empty to skip the AI narrative)")
			if err != nil {
				return cfg, "", "", err
			}
			openaiKey = key
			cfg.Tokens.OpenAIAPIKey = key
		}
	}
	return cfg, githubToken, openaiKey, nil
}

// sincePrompt wraps the interactive since prompt. When the repository has
// tags, a fuzzy tag picker runs first; picking one uses that tag's commit
// date, cancelling falls through to the text prompt.
func (c *Client) sincePrompt() history.PromptFunc {
	return func(seed string) (string, error) {
		if c.prompts.SelectTag != nil {
			if tags, err := c.git.ListTags(); err == nil && len(tags) > 0 {
				if tag, ok := c.prompts.SelectTag(tags); ok {
					date, err := c.git.TagDate(tag)
					if err != nil {
						return "", fmt.Errorf("cannot resolve tag %q: %w", tag, err)
					}
					return date.Format(time.RFC3339), nil
				}
			}
		}
		if c.prompts.Since == nil {
			return seed, nil
		}
		return c.prompts.Since(seed)
	}
}

// fetchPRDetails extracts referenced PR numbers across all commits and
// fetches their metadata in bounded batches. The result is best-effort.
func (c *Client) fetchPRDetails(ctx context.Context, token string, info remote.Info, commits []git.Commit) map[int]gh.PullRequestInfo {
	var numbers []int
	seen := make(map[int]bool)
	for _, commit := range commits {
		for _, n := range changelog.ExtractPRNumbers(commit.Message) {
			if !seen[n] {
				seen[n] = true
				numbers = append(numbers, n)
			}
		}
	}
	if len(numbers) == 0 {
		return map[int]gh.PullRequestInfo{}
	}
	return c.newGithub(ctx, token, info).BatchGetPRs(ctx, numbers)
}

// narrate returns the AI narrative when enabled and configured, degrading to
// the static fallback on any failure.
func (c *Client) narrate(ctx context.Context, apiKey string, noAI bool, body string) string {
	if noAI || apiKey == "" {
		return ai.Fallback()
	}
	narrative, err := c.newNarrative(apiKey).Narrative(ctx, body)
	if err != nil {
		ui.Warningf("narrative generation failed, using fallback: %v", err)
		return ai.Fallback()
	}
	return narrative
}

func renderDocument(info remote.Info, opts Options, plan history.Plan, body string, narrative string, commitCount int, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Changelog — %s\n\n", info.Slug())
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Branch: %s\n", opts.Branch)
	fmt.Fprintf(&b, "Since: %s\n", plan.Since)
	if plan.Tag != "" {
		fmt.Fprintf(&b, "Tag: %s\n", plan.Tag)
	}
	if opts.Build != "" {
		fmt.Fprintf(&b, "Build: %s\n", opts.Build)
	}
	b.WriteString("\n")

	if commitCount == 0 {
		b.WriteString("No changes found in this range.\n")
	} else {
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(narrative)
	b.WriteString("\n")
	return b.String()
}
