// Package changelog turns commits and pull request metadata into the
// Markdown bullet list that forms the body of a changelog document.
package changelog

import (
	"fmt"
	"strings"

	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/git"
)

// Compose renders one Markdown bullet per commit, preserving input order.
// A commit whose first referenced PR has known metadata is rendered with the
// PR title and links to both the PR and the commit; otherwise the bullet
// falls back to the commit's first message line and short hash.
func Compose(commits []git.Commit, prs map[int]gh.PullRequestInfo, webBase string) string {
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, composeLine(c, prs, webBase))
	}
	return strings.Join(lines, "\n")
}

func composeLine(c git.Commit, prs map[int]gh.PullRequestInfo, webBase string) string {
	commitLink := fmt.Sprintf("[%s](%s/commit/%s)", c.ShortHash(), webBase, c.Hash)

	if numbers := ExtractPRNumbers(c.Message); len(numbers) > 0 {
		if pr, ok := prs[numbers[0]]; ok {
			return fmt.Sprintf("- %s ([#%d](%s), %s)", pr.Title, pr.Number, pr.URL, commitLink)
		}
	}

	return fmt.Sprintf("- %s (%s)", c.Title(), commitLink)
}
