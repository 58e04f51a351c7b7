/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/passforge/cmd/create"
	"github.com/CodeMonkeyCybersecurity/passforge/cmd/inspect"
	"github.com/CodeMonkeyCybersecurity/passforge/cmd/self"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/config"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command for passforge.
var RootCmd = &cobra.Command{
	Use:   shared.AppID,
	Short: "Turn a weak password into four strong ones",
	Long: `passforge derives strong password candidates from a password you already
use, or generates fully random ones when you do not supply one, and explains
why the suggestions are stronger.

Examples:
  passforge create passwords --prompt
  passforge create passwords --seed password123 --output json
  passforge inspect password 'P@55w0rd!23xyzAB' --seed password123`,
	Version:       shared.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		pf_err.SetDebugMode(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return RootCmd.Help()
		}
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return pf_err.NewExpectedError(cmd.Context(), fmt.Errorf("command not found: %s", strings.Join(args, " ")))
		}
		return c.Help()
	},
}

var registered bool

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	if registered {
		return
	}
	registered = true

	RootCmd.PersistentFlags().String(config.ConfigFlag, "", "config file (default $HOME/.passforge.yaml)")
	RootCmd.PersistentFlags().Bool("debug", false, "print full error chains with stack traces")
	RootCmd.SetHelpCommand(HelpCmd)

	for _, subCmd := range []*cobra.Command{
		create.CreateCmd,
		inspect.InspectCmd,
		self.SelfCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush telemetry: %v\n", err)
		}
		_ = logger.Sync()
	}()

	RegisterCommands()

	err := RootCmd.Execute()
	if err == nil {
		return 0
	}

	code := pf_err.GetExitCode(err)
	if pf_err.IsExpectedUserError(err) || code == 2 {
		logger.L().Warn("CLI completed with user error", zap.String("error", pf_err.SanitizeErrorMessage(err)))
	} else {
		logger.L().Error("CLI execution error", zap.String("error", pf_err.SanitizeErrorMessage(err)))
	}
	pf_err.PrintError(err)
	return code
}
