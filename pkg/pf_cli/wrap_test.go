// pkg/pf_cli/wrap_test.go

package pf_cli

import (
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name        string
		fn          RunFunc
		args        []string
		expectError bool
		errorMsg    string
		userError   bool
	}{
		{
			name: "successful execution",
			fn: func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				assert.NotNil(t, rc)
				assert.NotNil(t, rc.Ctx)
				assert.NotNil(t, rc.Log)
				assert.NotEmpty(t, rc.TraceID)
				return nil
			},
			args: []string{"Ab3!defghijklmno"},
		},
		{
			name: "command returns error",
			fn: func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				return errors.New("command failed")
			},
			expectError: true,
			errorMsg:    "command failed",
		},
		{
			name: "user error passes through",
			fn: func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				return pf_err.NewExpectedError(rc.Ctx, errors.New("bad flag"))
			},
			expectError: true,
			errorMsg:    "bad flag",
			userError:   true,
		},
		{
			name: "panic recovery",
			fn: func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				panic("test panic")
			},
			expectError: true,
			errorMsg:    "panic: test panic",
		},
		{
			name: "control characters in args rejected",
			fn: func(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				t.Fatal("command should not run")
				return nil
			},
			args:        []string{"abc\x00def"},
			expectError: true,
			errorMsg:    "control characters",
			userError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test-cmd"}
			err := Wrap(tt.fn)(cmd, tt.args)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.Equal(t, tt.userError, pf_err.IsExpectedUserError(err))
		})
	}
}
