package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/ui"
)

type Command struct {
	ResetKeys bool
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "config",
		Short: "Edit stored API tokens",
		Long: `Interactively edit the stored GitHub token and OpenAI API key.

Tokens are kept in the per-user config file. The GITHUB_TOKEN and
OPENAI_API_KEY environment variables always take precedence over stored
values.

Example:
  changelog config
  changelog config --reset-keys`,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if c.ResetKeys {
				return ResetKeys()
			}
			return c.Run()
		},
	}

	command.Flags().BoolVar(&c.ResetKeys, "reset-keys", false, "Clear stored tokens instead of editing them")

	parent.AddCommand(command)
}

// Run prompts for each token, keeping the current value on empty input, and
// saves the config once.
func (c *Command) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := ui.PromptSecret(secretLabel("GitHub token", cfg.Tokens.GitHubToken))
	if err != nil {
		return err
	}
	if token != "" {
		cfg.Tokens.GitHubToken = token
	}

	key, err := ui.PromptSecret(secretLabel("OpenAI API key", cfg.Tokens.OpenAIAPIKey))
	if err != nil {
		return err
	}
	if key != "" {
		cfg.Tokens.OpenAIAPIKey = key
	}

	if err := cfg.Save(); err != nil {
		return err
	}
	ui.Success("Config saved")
	return nil
}

// ResetKeys clears both stored tokens
func ResetKeys() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfg.Tokens = config.Tokens{}
	if err := cfg.Save(); err != nil {
		return err
	}
	ui.Success("Stored tokens cleared")
	return nil
}

func secretLabel(name string, current string) string {
	if current == "" {
		return name + " (unset, empty to keep)"
	}
	return name + " (set, empty to keep)"
}
