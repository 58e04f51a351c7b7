// pkg/shared/constants.go

package shared

import (
	"os"
	"path/filepath"
)

const (
	AppID   = "passforge"
	Version = "0.3.0"

	// EnvPrefix prefixes every environment override, e.g. PASSFORGE_OUTPUT.
	EnvPrefix = "PASSFORGE"

	ConfigFileName = ".passforge"
	ConfigFileType = "yaml"
	DotEnvFile     = ".env"

	LogsTmp = "/tmp/passforge/passforge.log"
)

const (
	DirPermOwner           = 0700
	FilePermOwnerReadWrite = 0600
)

// StateDir returns $HOME/.passforge, the home of telemetry markers and ids.
func StateDir() string {
	return filepath.Join(os.Getenv("HOME"), "."+AppID)
}

// XDGStatePath resolves $XDG_STATE_HOME/passforge/<name>, defaulting to ~/.local/state.
func XDGStatePath(name string) string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(base, AppID, name)
}
