package gh

import "time"

// PullRequestInfo is the PR metadata shown next to a commit in the changelog
type PullRequestInfo struct {
	Number   int
	Title    string
	URL      string
	MergedAt *time.Time
	Author   string
}
