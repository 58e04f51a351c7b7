// pkg/pf_err/errors.go

package pf_err

import (
	"context"
	"errors"
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// UserError marks a failure the user can fix by changing input or flags.
type UserError struct {
	cause error
}

func (e *UserError) Error() string { return e.cause.Error() }
func (e *UserError) Unwrap() error { return e.cause }

// NewExpectedError wraps err as a UserError. Returns nil for nil.
func NewExpectedError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	otelzap.Ctx(ctx).Debug("Expected user error", zap.String("error", SanitizeErrorMessage(err)))
	return &UserError{cause: err}
}

// IsExpectedUserError reports whether a UserError is anywhere in err's chain.
func IsExpectedUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

var debugMode bool

func SetDebugMode(enabled bool) { debugMode = enabled }

// PrintError writes a one-line summary to stderr, plus the stack and hints in debug mode.
func PrintError(err error) {
	if err == nil {
		return
	}
	if debugMode {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", SanitizeErrorMessage(err))
	}
	for _, hint := range cerr.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
}
