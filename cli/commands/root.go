// Package commands implements the dbkit maintenance CLI.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Execute is the main entry point for the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "dbkit",
		Short:         "Backend-agnostic database maintenance commands",
		Long:          "dbkit drives the configured database backend through the uniform CRUD toolkit.\nThe backend is selected with DBKIT_PROVIDER and its connection string with\nDBKIT_DATABASE_URL (or DBKIT_SQLITE_PATH for the embedded backend).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(NewPingCommand())
	root.AddCommand(NewCountCommand())
	root.AddCommand(NewSelectCommand())
	root.AddCommand(NewVersionCommand())

	return root.Execute()
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dbkit version %s\n", version)
		},
	}
}
