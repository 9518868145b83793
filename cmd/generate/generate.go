package generate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjulian5/changelog/internal/common"
	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/release"
)

// Command is the default changelog generation run. It installs its flags and
// run function directly on the root command.
type Command struct {
	Since         string
	Tag           string
	Build         string
	Branch        string
	NoAI          bool
	IgnoreHistory bool
	NoHistory     bool
	SetNextSince  string

	Release *release.Client
}

// Install wires the generation flags and run function onto the given command
func (c *Command) Install(root *cobra.Command) {
	root.PreRunE = func(cobraCmd *cobra.Command, args []string) error {
		var err error
		c.Release, err = common.InitReleaseClient()
		return err
	}
	root.RunE = func(cobraCmd *cobra.Command, args []string) error {
		return c.Run(cobraCmd.Context())
	}

	root.Flags().StringVar(&c.Since, "since", "", "Include commits after this date (any format git understands)")
	root.Flags().StringVar(&c.Tag, "tag", "", "Include commits after this tag's commit date")
	root.Flags().StringVar(&c.Build, "build", "", "Build or version label to record in the changelog header")
	root.Flags().StringVar(&c.Branch, "branch", "main", "Branch to generate the changelog from")
	root.Flags().BoolVar(&c.NoAI, "no-ai", false, "Skip the AI narrative and use the static summary skeleton")
	root.Flags().BoolVar(&c.IgnoreHistory, "ignore-history", false, "Ignore the stored next-since boundary from the previous run")
	root.Flags().BoolVar(&c.NoHistory, "no-history", false, "Do not record this run in history")
	root.Flags().StringVar(&c.SetNextSince, "set-next-since", "", "Force the next-since boundary recorded after this run")
}

// Run loads the config, executes the release workflow, and persists the
// updated config once.
func (c *Command) Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfg, err = c.Release.Run(ctx, cfg, release.Options{
		Since:         c.Since,
		Tag:           c.Tag,
		Build:         c.Build,
		Branch:        c.Branch,
		NoAI:          c.NoAI,
		IgnoreHistory: c.IgnoreHistory,
		NoHistory:     c.NoHistory,
		SetNextSince:  c.SetNextSince,
	})
	if err != nil {
		return err
	}

	return cfg.Save()
}
