// Package config persists tokens and per-repository run history as a small
// JSON document in the user's config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion is the config schema version written by this build
const CurrentVersion = 1

// Environment variables that override stored token values
const (
	GitHubTokenEnv = "GITHUB_TOKEN"
	OpenAIKeyEnv   = "OPENAI_API_KEY"
)

// Tokens holds stored API credentials
type Tokens struct {
	GitHubToken  string `json:"github_token,omitempty"`
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
}

// RepoHistory is the per-repository bookkeeping from the previous run.
// All fields are optional ISO-8601 timestamps or plain strings.
type RepoHistory struct {
	LastSince     string `json:"last_since,omitempty"`
	LastTag       string `json:"last_tag,omitempty"`
	NextSince     string `json:"next_since,omitempty"`
	LastGenerated string `json:"last_generated,omitempty"`
	LastBranch    string `json:"last_branch,omitempty"`
}

// Config is the full persisted state, keyed by "owner/repo" slug
type Config struct {
	Version int                    `json:"version"`
	Tokens  Tokens                 `json:"tokens"`
	Repos   map[string]RepoHistory `json:"repos"`
}

// Default returns an empty config with the current schema version
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Repos:   map[string]RepoHistory{},
	}
}

// Path returns the fixed per-user config file location
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "changelog", "config.json"), nil
}

// Load reads the config from its default location.
// A missing or unparseable file yields a default config, never an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path), nil
}

// LoadFrom reads the config from the given path, substituting defaults when
// the file is absent or corrupt.
func LoadFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Repos == nil {
		cfg.Repos = map[string]RepoHistory{}
	}
	return cfg
}

// Save writes the config to its default location
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to the given path, creating parent directories
func (c Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// History returns the stored history for a repo slug, zero-valued if unknown
func (c Config) History(slug string) RepoHistory {
	return c.Repos[slug]
}

// WithHistory returns a copy of the config with the slug's history replaced
func (c Config) WithHistory(slug string, h RepoHistory) Config {
	repos := make(map[string]RepoHistory, len(c.Repos)+1)
	for k, v := range c.Repos {
		repos[k] = v
	}
	repos[slug] = h
	c.Repos = repos
	return c
}

// ResolveGitHubToken returns the effective GitHub token, preferring the
// environment over the stored value.
func (c Config) ResolveGitHubToken() string {
	return resolveSecret(GitHubTokenEnv, c.Tokens.GitHubToken)
}

// ResolveOpenAIKey returns the effective OpenAI API key, preferring the
// environment over the stored value.
func (c Config) ResolveOpenAIKey() string {
	return resolveSecret(OpenAIKeyEnv, c.Tokens.OpenAIAPIKey)
}

func resolveSecret(envName string, stored string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return stored
}
