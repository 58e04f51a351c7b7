/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
)

// PlatformLogPaths returns candidate log paths in order of priority for the platform.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.AppID, shared.AppID+".log"),
		}
	default:
		return []string{
			shared.XDGStatePath(shared.AppID + ".log"), // ~/.local/state/passforge/passforge.log
			shared.LogsTmp,
		}
	}
}
