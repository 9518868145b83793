// Package gh fetches pull request metadata from the GitHub REST API.
package gh

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/go-github/v61/github"
	"golang.org/x/oauth2"
)

const userAgent = "changelog/1.0"

// batchSize bounds the number of concurrent PR lookups in flight
const batchSize = 8

// Client provides GitHub operations for a single repository
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a GitHub client for owner/repo, authenticated when a
// token is provided and anonymous otherwise.
func NewClient(ctx context.Context, token string, owner string, repo string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return &Client{gh: client, owner: owner, repo: repo}
}

// GetPR fetches metadata for a single pull request
func (c *Client) GetPR(ctx context.Context, number int) (PullRequestInfo, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return PullRequestInfo{}, err
	}

	info := PullRequestInfo{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Author: pr.GetUser().GetLogin(),
	}
	if mergedAt := pr.GetMergedAt(); !mergedAt.IsZero() {
		t := mergedAt.Time
		info.MergedAt = &t
	}
	return info, nil
}

// BatchGetPRs fetches metadata for the given PR numbers in concurrent
// batches of eight, waiting for each batch to complete before starting the
// next. The result contains only the PRs that could be fetched; individual
// failures are silently omitted, never retried.
func (c *Client) BatchGetPRs(ctx context.Context, numbers []int) map[int]PullRequestInfo {
	return batchFetch(ctx, numbers, c.GetPR)
}

// batchFetch runs fetch over numbers in bounded concurrent batches and
// collects the successful results.
func batchFetch(ctx context.Context, numbers []int, fetch func(ctx context.Context, number int) (PullRequestInfo, error)) map[int]PullRequestInfo {
	results := make(map[int]PullRequestInfo, len(numbers))
	var mu sync.Mutex

	for start := 0; start < len(numbers); start += batchSize {
		end := start + batchSize
		if end > len(numbers) {
			end = len(numbers)
		}

		var wg sync.WaitGroup
		for _, number := range numbers[start:end] {
			wg.Add(1)
			go func(number int) {
				defer wg.Done()
				info, err := fetch(ctx, number)
				if err != nil {
					return
				}
				mu.Lock()
				results[number] = info
				mu.Unlock()
			}(number)
		}
		wg.Wait()
	}

	return results
}
