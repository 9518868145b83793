package resetkeys

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/changelog/cmd/configcmd"
)

// Command is a shortcut for `config --reset-keys`
type Command struct{}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "reset-keys",
		Short: "Clear stored API tokens",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return configcmd.ResetKeys()
		},
	}

	parent.AddCommand(command)
}
