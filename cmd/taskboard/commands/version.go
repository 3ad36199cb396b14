package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and compiled-in drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetVersionInfo()
			drivers := data.ListRegisteredDrivers()

			if asJSON {
				out, err := json.MarshalIndent(struct {
					version.Info
					Drivers map[string][]string `json:"drivers"`
				}{info, drivers}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Database Drivers: %s\n", strings.Join(drivers["database"], ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Cache Drivers: %s\n", strings.Join(drivers["cache"], ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
