// pkg/telemetry/telemetry_management/config.go

package telemetry_management

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Status summarises local telemetry state.
type Status struct {
	Enabled  bool
	FilePath string
	Spans    int
}

// Enable writes the opt-in marker. Spans are recorded from the next command on.
func Enable(rc *pf_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)
	marker := telemetry.MarkerPath()

	if err := os.MkdirAll(filepath.Dir(marker), shared.DirPermOwner); err != nil {
		log.Error("Failed to create state directory", zap.Error(err))
		return cerr.Wrap(err, "enable telemetry")
	}
	if err := os.WriteFile(marker, []byte("on\n"), shared.FilePermOwnerReadWrite); err != nil {
		log.Error("Failed to write telemetry toggle file", zap.Error(err))
		return cerr.Wrap(err, "enable telemetry")
	}

	log.Info("Telemetry enabled", zap.String("marker", marker))
	ShowTelemetryInfo(rc)
	return nil
}

// Disable removes the opt-in marker. Recorded spans are kept.
func Disable(rc *pf_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)
	if err := os.Remove(telemetry.MarkerPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error("Failed to remove telemetry toggle file", zap.Error(err))
		return cerr.Wrap(err, "disable telemetry")
	}
	log.Info(logger.TerminalPrefix + " Telemetry disabled")
	return nil
}

// GetStatus counts recorded spans without loading the file into memory.
func GetStatus() (Status, error) {
	st := Status{Enabled: telemetry.IsEnabled(), FilePath: telemetry.FilePath()}

	f, err := os.Open(st.FilePath)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, cerr.Wrap(err, "open telemetry file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			st.Spans++
		}
	}
	if err := scanner.Err(); err != nil {
		return st, cerr.Wrap(err, "read telemetry file")
	}
	return st, nil
}

// ShowTelemetryStatus prints whether telemetry is on and how much has been recorded.
func ShowTelemetryStatus(rc *pf_io.RuntimeContext) error {
	log := otelzap.Ctx(rc.Ctx)

	st, err := GetStatus()
	if err != nil {
		return err
	}

	state := "disabled"
	if st.Enabled {
		state = "enabled"
	}
	log.Info(logger.TerminalPrefix+" Telemetry is "+state,
		zap.String("file", st.FilePath),
		zap.Int("spans", st.Spans))
	return nil
}

// ShowTelemetryInfo displays where data goes and how to analyse it.
func ShowTelemetryInfo(rc *pf_io.RuntimeContext) {
	log := otelzap.Ctx(rc.Ctx)
	path := telemetry.FilePath()

	log.Info(logger.TerminalPrefix+" Telemetry configuration",
		zap.String("file_path", path),
		zap.String("format", "JSONL (JSON Lines)"),
		zap.String("privacy", "Local storage only, seeds and candidates are never recorded"))

	log.Info(logger.TerminalPrefix+" Analysis commands",
		zap.String("command_frequency", "jq -r '.Name' "+path+" | sort | uniq -c | sort -nr"),
		zap.String("mode_split", "jq -r '.Attributes[] | select(.Key == \"mode\") | .Value.Value' "+path+" | sort | uniq -c"))
}
