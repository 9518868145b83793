package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPRNumbersPatterns(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []int
	}{
		{"merge commit", "Merge pull request #123 from acme/feature", []int{123}},
		{"merge commit lowercase", "merge pull request #123 from acme/feature", []int{123}},
		{"squash suffix", "feat: add widget (#123)", []int{123}},
		{"pr mention", "Follow-up to PR #123", []int{123}},
		{"pr mention lowercase", "follow-up to pr #123", []int{123}},
		{"no reference", "fix: typo", nil},
		{"bare number", "fixes issue 123", nil},
		{"multiple distinct", "Merge pull request #1 (#2) and PR #3", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPRNumbers(tt.message))
		})
	}
}

func TestExtractPRNumbersDeduplicates(t *testing.T) {
	// The same number matched by several patterns collapses to one entry
	msg := "Merge pull request #123\n\nrevert of (#123), see PR #123"
	assert.Equal(t, []int{123}, ExtractPRNumbers(msg))
}

func TestExtractPRNumbersFirstIsPatternOrder(t *testing.T) {
	// "(#N)" appears earlier in the text, but the merge pattern runs first
	msg := "feat: thing (#7)\n\nMerge pull request #9"
	assert.Equal(t, []int{9, 7}, ExtractPRNumbers(msg))
}
