// pkg/telemetry/telemetry_management/config_test.go

package telemetry_management

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableDisableStatus(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := pf_io.NewContext(context.Background(), "telemetry")

	st, err := GetStatus()
	require.NoError(t, err)
	assert.False(t, st.Enabled)
	assert.Zero(t, st.Spans)
	assert.Equal(t, filepath.Join(home, ".passforge", "telemetry.jsonl"), st.FilePath)

	require.NoError(t, Enable(rc))
	assert.True(t, telemetry.IsEnabled())

	require.NoError(t, os.WriteFile(telemetry.FilePath(), []byte("{\"Name\":\"passwords\"}\n{\"Name\":\"password\"}\n\n"), 0o600))
	st, err = GetStatus()
	require.NoError(t, err)
	assert.True(t, st.Enabled)
	assert.Equal(t, 2, st.Spans)
	require.NoError(t, ShowTelemetryStatus(rc))

	require.NoError(t, Disable(rc))
	assert.False(t, telemetry.IsEnabled())
	// Disabling twice is fine.
	require.NoError(t, Disable(rc))
}
