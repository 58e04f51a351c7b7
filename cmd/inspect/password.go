// cmd/inspect/password.go
package inspect

import (
	"strconv"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/config"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/output"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/rationale"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Overridden in tests.
var newSource = func() crypto.RandomSource { return crypto.NewSource() }

var inspectPasswordCmd = newPasswordCmd()

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password <candidate>",
		Short: "Explain why a candidate is stronger than its seed",
		Long: `Explain why a candidate password is stronger than the password it replaces.

The statements are heuristic and illustrative. They are not a strength audit.

Examples:
  passforge inspect password 'P@55w0rd!23xyzAB' --seed password123
  passforge inspect password 'Xk9#mQ2!vL7@pR4$' --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: pf_cli.Wrap(runInspectPassword),
	}

	cli.AddStringFlag(cmd, "seed", "s", "", "the password the candidate replaces", false)
	cli.AddStringFlag(cmd, "output", "o", "text", "output format: text, json or yaml", false)
	cli.AddBoolFlag(cmd, "normalize", "", true, "compose the seed to Unicode NFC first")
	return cmd
}

func runInspectPassword(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	seed, err := pf_io.PrepareSeed(cli.GetStringOrEmpty(cmd, "seed"), cfg.Normalize)
	if err != nil {
		return pf_err.NewValidationError("invalid seed", err)
	}
	candidate := args[0]

	logger.Debug("Explaining candidate",
		zap.String("candidate", crypto.Redact(candidate)),
		zap.String("seed", crypto.Redact(seed)))

	reasons := rationale.NewGenerator(newSource()).Explain(candidate, seed)
	rc.Attributes["rationale_count"] = strconv.Itoa(len(reasons))

	if err := output.Render(cmd.OutOrStdout(), output.Format(cfg.Output), output.Report{Rationale: reasons}); err != nil {
		return pf_err.NewSystemError("failed to render output", err)
	}
	return nil
}
