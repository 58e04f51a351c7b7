// cmd/inspect/inspect.go
/*
Copyright © 2025 CODE MONKEY CYBERSECURITY git@cybermonkey.net.au

*/
package inspect

import (
	"github.com/spf13/cobra"
)

// InspectCmd is the root command for inspect operations
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Short:   "Inspect resources (e.g., passwords)",
	Long:    `The inspect command explains existing resources, such as why a password is stronger than the one it replaces.`,
	Aliases: []string{"explain"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// init registers subcommands for the inspect command
func init() {
	InspectCmd.AddCommand(inspectPasswordCmd)
}
