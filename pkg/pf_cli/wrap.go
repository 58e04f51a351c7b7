// pkg/pf_cli/wrap.go

package pf_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is the signature every passforge command implements.
type RunFunc func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap ensures panic recovery, telemetry, logging, and argument validation
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := pf_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		// Panic recovery
		defer rc.HandlePanic(&err)

		rc.Log.Debug("Command started",
			zap.String("path", cmd.CommandPath()),
			zap.Int("args", len(args)))

		if verr := validateArgs(args); verr != nil {
			rc.Log.Warn("Argument validation failed", zap.Error(verr))
			return pf_err.NewExpectedError(rc.Ctx, cerr.Wrap(verr, "invalid input"))
		}

		err = fn(rc, cmd, args)
		if err != nil && !pf_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}

// validateArgs applies the seed rules to positional arguments, which carry
// candidate passwords.
func validateArgs(args []string) error {
	for _, arg := range args {
		if err := pf_io.ValidateSeed(arg); err != nil {
			return err
		}
	}
	return nil
}
