// Package commands defines the taskboard command line.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Projects and tasks, over a JSON API and a small web UI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: search /etc/taskboard, $HOME/.taskboard, .)")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewMigrateCommand(&configFile),
		NewVersionCommand(),
	)

	return rootCmd
}
