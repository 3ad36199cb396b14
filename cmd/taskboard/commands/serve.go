package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ncobase/taskboard/app"
	"github.com/ncobase/taskboard/config"
)

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Args:    cobra.NoArgs,
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			a, cleanup, err := app.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer cleanup()

			return a.Run(cmd.Context())
		},
	}
}
