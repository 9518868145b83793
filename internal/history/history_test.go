package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/git"
)

type stubTags struct {
	date time.Time
	err  error
}

func (s stubTags) TagDate(tag string) (time.Time, error) {
	return s.date, s.err
}

func noPrompt(t *testing.T) PromptFunc {
	return func(seed string) (string, error) {
		t.Fatal("prompt should not be called")
		return "", nil
	}
}

func TestPlanSinceTagFlagWins(t *testing.T) {
	tagDate := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	stored := config.RepoHistory{NextSince: "2026-06-01T00:00:00Z"}

	plan, err := PlanSince("v1.2.0", "2026-04-01", stored, false, stubTags{date: tagDate}, noPrompt(t))
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01T08:00:00Z", plan.Since)
	assert.Equal(t, "v1.2.0", plan.Tag)
}

func TestPlanSinceUnresolvableTagFails(t *testing.T) {
	_, err := PlanSince("v9.9.9", "", config.RepoHistory{}, false, stubTags{err: errors.New("unknown revision")}, noPrompt(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v9.9.9")
}

func TestPlanSinceExplicitFlag(t *testing.T) {
	stored := config.RepoHistory{NextSince: "2026-06-01T00:00:00Z"}

	plan, err := PlanSince("", "3 days ago", stored, false, stubTags{}, noPrompt(t))
	require.NoError(t, err)
	assert.Equal(t, "3 days ago", plan.Since)
	assert.Empty(t, plan.Tag)
}

func TestPlanSinceStoredNextSince(t *testing.T) {
	stored := config.RepoHistory{NextSince: "2026-06-01T00:00:00Z"}

	plan, err := PlanSince("", "", stored, false, stubTags{}, noPrompt(t))
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01T00:00:00Z", plan.Since)
}

func TestPlanSinceIgnoreHistoryPrompts(t *testing.T) {
	stored := config.RepoHistory{
		NextSince: "2026-06-01T00:00:00Z",
		LastSince: "2026-05-15T00:00:00Z",
	}

	var gotSeed string
	prompt := func(seed string) (string, error) {
		gotSeed = seed
		return "2026-05-20", nil
	}

	plan, err := PlanSince("", "", stored, true, stubTags{}, prompt)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-15T00:00:00Z", gotSeed)
	assert.Equal(t, "2026-05-20", plan.Since)
}

func TestPlanSinceDefaultSeed(t *testing.T) {
	var gotSeed string
	prompt := func(seed string) (string, error) {
		gotSeed = seed
		return "", nil
	}

	plan, err := PlanSince("", "", config.RepoHistory{}, false, stubTags{}, prompt)
	require.NoError(t, err)
	assert.Equal(t, DefaultSinceSeed, gotSeed)
	// Empty answer falls back to the seed
	assert.Equal(t, DefaultSinceSeed, plan.Since)
}

func TestUpdateAdvancesNextSince(t *testing.T) {
	maxDate := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	commits := []git.Commit{
		{Hash: "aaa", Date: maxDate.Add(-time.Hour)},
		{Hash: "bbb", Date: maxDate},
	}
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	h := Update(config.RepoHistory{}, Plan{Since: "2026-08-01", Tag: "v1.0.0"}, "main", commits, now, "")

	assert.Equal(t, "2026-08-10T12:00:01Z", h.NextSince)
	assert.Equal(t, "2026-08-01", h.LastSince)
	assert.Equal(t, "v1.0.0", h.LastTag)
	assert.Equal(t, "main", h.LastBranch)
	assert.Equal(t, "2026-08-25T09:00:00Z", h.LastGenerated)
}

func TestUpdateNextSinceMonotonic(t *testing.T) {
	// A run whose since boundary is the previous NextSince can never
	// re-include the commit that produced it.
	maxDate := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	h := Update(config.RepoHistory{}, Plan{Since: "2026-08-01"}, "main", []git.Commit{{Hash: "aaa", Date: maxDate}}, time.Now(), "")

	boundary, err := time.Parse(time.RFC3339, h.NextSince)
	require.NoError(t, err)
	assert.True(t, boundary.After(maxDate))
}

func TestUpdateNoCommitsKeepsNextSince(t *testing.T) {
	stored := config.RepoHistory{NextSince: "2026-06-01T00:00:00Z", LastTag: "v0.9.0"}

	h := Update(stored, Plan{Since: "2026-06-01T00:00:00Z"}, "main", nil, time.Now(), "")

	assert.Equal(t, "2026-06-01T00:00:00Z", h.NextSince)
	// Tag not used this run, previous value kept
	assert.Equal(t, "v0.9.0", h.LastTag)
}

func TestUpdateOverrideNextSince(t *testing.T) {
	commits := []git.Commit{{Hash: "aaa", Date: time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)}}

	h := Update(config.RepoHistory{}, Plan{Since: "2026-08-01"}, "main", commits, time.Now(), "2027-01-01T00:00:00Z")

	assert.Equal(t, "2027-01-01T00:00:00Z", h.NextSince)
}
