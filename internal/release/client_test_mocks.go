package release

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/git"
)

type MockGitClient struct {
	mock.Mock
}

// GetRemoteName implements GitClient.
func (m *MockGitClient) GetRemoteName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// GetRemoteURL implements GitClient.
func (m *MockGitClient) GetRemoteURL(remote string) (string, error) {
	args := m.Called(remote)
	return args.String(0), args.Error(1)
}

// Fetch implements GitClient.
func (m *MockGitClient) Fetch(remote string) error {
	args := m.Called(remote)
	return args.Error(0)
}

// CheckoutBranch implements GitClient.
func (m *MockGitClient) CheckoutBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// Pull implements GitClient.
func (m *MockGitClient) Pull() error {
	args := m.Called()
	return args.Error(0)
}

// CommitsSince implements GitClient.
func (m *MockGitClient) CommitsSince(branch string, since string) ([]git.Commit, error) {
	args := m.Called(branch, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]git.Commit), args.Error(1)
}

// TagDate implements GitClient.
func (m *MockGitClient) TagDate(tag string) (time.Time, error) {
	args := m.Called(tag)
	return args.Get(0).(time.Time), args.Error(1)
}

// ListTags implements GitClient.
func (m *MockGitClient) ListTags() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockGithubClient struct {
	mock.Mock
}

// BatchGetPRs implements GithubClient.
func (m *MockGithubClient) BatchGetPRs(ctx context.Context, numbers []int) map[int]gh.PullRequestInfo {
	args := m.Called(ctx, numbers)
	if args.Get(0) == nil {
		return map[int]gh.PullRequestInfo{}
	}
	return args.Get(0).(map[int]gh.PullRequestInfo)
}

type MockNarrativeClient struct {
	mock.Mock
}

// Narrative implements NarrativeClient.
func (m *MockNarrativeClient) Narrative(ctx context.Context, changelog string) (string, error) {
	args := m.Called(ctx, changelog)
	return args.String(0), args.Error(1)
}
