package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSSH(t *testing.T) {
	info, err := Resolve("git@github.com:acme/widgets.git")
	require.NoError(t, err)

	assert.Equal(t, Info{
		Host:    "github.com",
		Owner:   "acme",
		Repo:    "widgets",
		WebBase: "https://github.com/acme/widgets",
	}, info)
	assert.Equal(t, "acme/widgets", info.Slug())
}

func TestResolveHTTPS(t *testing.T) {
	for _, url := range []string{
		"https://github.com/acme/widgets.git",
		"https://github.com/acme/widgets",
	} {
		info, err := Resolve(url)
		require.NoError(t, err, url)
		assert.Equal(t, "acme", info.Owner)
		assert.Equal(t, "widgets", info.Repo)
		assert.Equal(t, "https://github.com/acme/widgets", info.WebBase)
	}
}

func TestResolveSSHWithoutSuffix(t *testing.T) {
	info, err := Resolve("git@github.com:acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "widgets", info.Repo)
}

func TestResolveUnsupportedHost(t *testing.T) {
	_, err := Resolve("https://gitlab.com/acme/widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported remote host")

	_, err = Resolve("git@gitlab.com:acme/widgets.git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported remote host")
}

func TestResolveUnsupportedFormat(t *testing.T) {
	for _, url := range []string{
		"",
		"not-a-url",
		"https://github.com/acme",
		"git@github.com:acme",
		"/local/path/repo.git",
	} {
		_, err := Resolve(url)
		assert.Error(t, err, url)
	}
}
