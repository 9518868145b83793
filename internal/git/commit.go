package git

import (
	"strings"
	"time"
)

// Commit represents a git commit as reported by git log
type Commit struct {
	Hash    string
	Message string
	Date    time.Time
	Author  string
}

// Title returns the first line of the commit message
func (c Commit) Title() string {
	line, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(line)
}

// ShortHash returns the abbreviated commit hash
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// UniqueCommits removes duplicate commits by hash, preserving first-seen order.
func UniqueCommits(commits []Commit) []Commit {
	seen := make(map[string]bool, len(commits))
	unique := make([]Commit, 0, len(commits))
	for _, c := range commits {
		if seen[c.Hash] {
			continue
		}
		seen[c.Hash] = true
		unique = append(unique, c)
	}
	return unique
}

// MaxDate returns the latest commit timestamp in the list.
// The second return value is false when the list is empty.
func MaxDate(commits []Commit) (time.Time, bool) {
	var max time.Time
	for _, c := range commits {
		if c.Date.After(max) {
			max = c.Date
		}
	}
	return max, !max.IsZero()
}
