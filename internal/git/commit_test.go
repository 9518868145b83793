package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitTitle(t *testing.T) {
	c := Commit{Message: "feat: add widget (#42)\n\nLonger description."}
	assert.Equal(t, "feat: add widget (#42)", c.Title())

	c = Commit{Message: "single line"}
	assert.Equal(t, "single line", c.Title())

	c = Commit{}
	assert.Equal(t, "", c.Title())
}

func TestCommitShortHash(t *testing.T) {
	c := Commit{Hash: "0123456789abcdef0123456789abcdef01234567"}
	assert.Equal(t, "0123456", c.ShortHash())

	c = Commit{Hash: "abc"}
	assert.Equal(t, "abc", c.ShortHash())
}

func TestUniqueCommits(t *testing.T) {
	a := Commit{Hash: "aaa", Message: "first"}
	b := Commit{Hash: "bbb", Message: "second"}
	input := []Commit{a, b, a, b, a}

	unique := UniqueCommits(input)
	assert.Equal(t, []Commit{a, b}, unique)
	assert.LessOrEqual(t, len(unique), len(input))

	// Idempotent: applying twice yields the same result as once
	assert.Equal(t, unique, UniqueCommits(unique))
}

func TestUniqueCommitsEmpty(t *testing.T) {
	assert.Empty(t, UniqueCommits(nil))
}

func TestMaxDate(t *testing.T) {
	early := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	max, ok := MaxDate([]Commit{{Date: late}, {Date: early}})
	assert.True(t, ok)
	assert.Equal(t, late, max)

	_, ok = MaxDate(nil)
	assert.False(t, ok)
}
