/*
Copyright © 2025 CODE MONKEY CYBERSECURITY git@cybermonkey.net.au
*/
// cmd/create/create.go
package create

import (
	"github.com/spf13/cobra"
)

// CreateCmd is the root command for create operations
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create resources (e.g., passwords)",
	Long:  `The create command generates new resources such as strong password candidates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// init registers subcommands for the create command
func init() {
	CreateCmd.AddCommand(createPasswordsCmd)
}
