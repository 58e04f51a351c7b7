// cmd/self/self.go

package self

import (
	"github.com/spf13/cobra"
)

// SelfCmd groups commands that manage passforge itself.
var SelfCmd = &cobra.Command{
	Use:   "self",
	Short: "Manage passforge itself",
	Long:  `Commands that manage the passforge installation, such as local telemetry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	SelfCmd.AddCommand(TelemetryCmd)
}
