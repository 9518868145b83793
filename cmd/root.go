package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/changelog/cmd/configcmd"
	"github.com/bjulian5/changelog/cmd/generate"
	"github.com/bjulian5/changelog/cmd/resetkeys"
	"github.com/bjulian5/changelog/internal/ui"
)

// rootCmd represents the base command; running it without a subcommand
// generates a changelog.
var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a Markdown changelog from git history and GitHub PRs",
	Long: `Changelog reads git commit history and GitHub pull request metadata
and writes a dated Markdown changelog, optionally with an AI-generated
narrative summary.

Each run records a per-repository boundary so the next run picks up where
the previous one left off.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	gen := &generate.Command{}
	gen.Install(rootCmd)

	commands := []Command{
		&configcmd.Command{},
		&resetkeys.Command{},
	}
	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
