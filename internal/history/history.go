// Package history decides the effective since boundary for a run and
// computes the history to persist afterwards. Planning is pure: git access
// and interactive prompting are injected by the caller, and the updated
// history value is returned for the caller to persist.
package history

import (
	"fmt"
	"time"

	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/git"
)

// DefaultSinceSeed seeds the interactive prompt when no prior run exists
const DefaultSinceSeed = "2 weeks ago"

// NextSinceMargin is added to the newest included commit's timestamp so the
// next run can never re-include that commit.
const NextSinceMargin = time.Second

// TagResolver resolves a tag name to its commit date
type TagResolver interface {
	TagDate(tag string) (time.Time, error)
}

// PromptFunc asks the user for a since date, seeded with a default answer
type PromptFunc func(seed string) (string, error)

// Plan is the resolved since boundary for a run
type Plan struct {
	// Since is passed verbatim to git's date parser
	Since string
	// Tag is set when the boundary came from a tag's commit date
	Tag string
}

// PlanSince resolves the since boundary. Priority order: explicit tag flag,
// explicit since flag, stored next-since from the prior run (unless ignored),
// interactive prompt seeded with the prior since or a two-week default.
// An unresolvable tag is a fatal error.
func PlanSince(tagFlag string, sinceFlag string, stored config.RepoHistory, ignoreHistory bool, tags TagResolver, prompt PromptFunc) (Plan, error) {
	if tagFlag != "" {
		date, err := tags.TagDate(tagFlag)
		if err != nil {
			return Plan{}, fmt.Errorf("cannot resolve tag %q: %w", tagFlag, err)
		}
		return Plan{Since: date.Format(time.RFC3339), Tag: tagFlag}, nil
	}

	if sinceFlag != "" {
		return Plan{Since: sinceFlag}, nil
	}

	if !ignoreHistory && stored.NextSince != "" {
		return Plan{Since: stored.NextSince}, nil
	}

	seed := stored.LastSince
	if seed == "" {
		seed = DefaultSinceSeed
	}
	answer, err := prompt(seed)
	if err != nil {
		return Plan{}, err
	}
	if answer == "" {
		answer = seed
	}
	return Plan{Since: answer}, nil
}

// Update computes the history to persist after a run. LastSince and LastTag
// track the values used this run (keeping prior values where not applicable),
// and NextSince advances to the newest included commit plus a one second
// margin, only when at least one commit was included. A non-empty override
// replaces the computed NextSince unconditionally.
func Update(h config.RepoHistory, plan Plan, branch string, commits []git.Commit, now time.Time, overrideNextSince string) config.RepoHistory {
	h.LastSince = plan.Since
	if plan.Tag != "" {
		h.LastTag = plan.Tag
	}
	h.LastBranch = branch
	h.LastGenerated = now.UTC().Format(time.RFC3339)

	if max, ok := git.MaxDate(commits); ok {
		h.NextSince = max.Add(NextSinceMargin).Format(time.RFC3339)
	}
	if overrideNextSince != "" {
		h.NextSince = overrideNextSince
	}
	return h
}
