// cmd/self/telemetry.go

package self

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/telemetry/telemetry_management"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var TelemetryCmd = &cobra.Command{
	Use:   "telemetry [on|off|status]",
	Short: "Manage passforge telemetry collection",
	Long: `Manage local telemetry collection for passforge usage statistics.

Telemetry data is stored locally in JSONL format under ~/.passforge and can be
analyzed to understand usage patterns. Seeds and candidates are never recorded
and no data is sent to external servers.

Commands:
  on     - Enable telemetry collection
  off    - Disable telemetry collection
  status - Show telemetry status and statistics`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE: pf_cli.Wrap(func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		log := otelzap.Ctx(rc.Ctx)

		switch action := args[0]; action {
		case "on":
			return telemetry_management.Enable(rc)
		case "off":
			return telemetry_management.Disable(rc)
		case "status":
			return telemetry_management.ShowTelemetryStatus(rc)
		default:
			log.Warn("Invalid telemetry argument", zap.String("arg", action))
			return pf_err.NewExpectedError(rc.Ctx, fmt.Errorf("usage: telemetry [on|off|status]"))
		}
	}),
}
