package common

import (
	"context"
	"fmt"

	"github.com/bjulian5/changelog/internal/ai"
	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/git"
	"github.com/bjulian5/changelog/internal/release"
	"github.com/bjulian5/changelog/internal/remote"
	"github.com/bjulian5/changelog/internal/ui"
)

// InitReleaseClient wires the git client and the real GitHub/OpenAI factories
// into a release client. Returns an error suitable for use in PreRunE hooks.
func InitReleaseClient() (*release.Client, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, fmt.Errorf("git client initialization failed: %w", err)
	}

	newGithub := func(ctx context.Context, token string, info remote.Info) release.GithubClient {
		return gh.NewClient(ctx, token, info.Owner, info.Repo)
	}
	newNarrative := func(apiKey string) release.NarrativeClient {
		return ai.NewClient(apiKey)
	}
	prompts := release.Prompts{
		Since:     func(seed string) (string, error) { return ui.PromptWithDefault("Generate changelog since", seed) },
		Secret:    ui.PromptSecret,
		SelectTag: ui.SelectTag,
	}

	return release.NewClient(gitClient, newGithub, newNarrative, prompts), nil
}
