// pkg/pf_io/secure_input.go

package pf_io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxSeedLength caps the seed in bytes.
	MaxSeedLength = 256
)

// InputValidationError represents input validation errors.
// Input is never echoed back; seeds are secrets.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// ValidateSeed accepts the empty seed and any printable UTF-8 text up to MaxSeedLength bytes.
func ValidateSeed(seed string) error {
	if len(seed) > MaxSeedLength {
		return &InputValidationError{
			Field:  "seed",
			Reason: fmt.Sprintf("too long (%d bytes, max %d)", len(seed), MaxSeedLength),
		}
	}

	if !utf8.ValidString(seed) {
		return &InputValidationError{Field: "seed", Reason: "contains invalid UTF-8 sequences"}
	}

	for _, r := range seed {
		if r < 32 || r == 127 {
			return &InputValidationError{Field: "seed", Reason: "contains control characters"}
		}
		if r >= 128 && r <= 159 {
			return &InputValidationError{Field: "seed", Reason: "contains C1 control characters"}
		}
	}
	return nil
}

// NormalizeSeed composes the seed to NFC so a decomposed "é" is one character
// and can be counted and substituted like its precomposed form.
func NormalizeSeed(seed string) string {
	return norm.NFC.String(seed)
}

// PrepareSeed validates and optionally normalizes a seed supplied by the user.
func PrepareSeed(raw string, normalize bool) (string, error) {
	if err := ValidateSeed(raw); err != nil {
		return "", err
	}
	if normalize {
		return NormalizeSeed(raw), nil
	}
	return raw, nil
}

// PromptSecureSeed reads the seed without echo when in is a terminal, and
// reads a single line otherwise so the seed can be piped in.
func PromptSecureSeed(rc *RuntimeContext, in *os.File, out io.Writer, prompt string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Check how we can read from stdin
	fd := int(in.Fd())
	interactive := term.IsTerminal(fd)
	logger.Debug("Assessing seed input capability", zap.Bool("interactive", interactive))

	// INTERVENE - Read the seed
	var seed string
	if interactive {
		fmt.Fprint(out, prompt)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if errors.Is(err, io.EOF) {
			return "", pf_err.NewUserCancelledError("seed prompt")
		}
		if err != nil {
			return "", cerr.Wrap(err, "failed to read seed")
		}
		seed = string(raw)
	} else {
		line, err := readLine(in)
		if err != nil {
			return "", err
		}
		seed = line
	}

	// EVALUATE - Validate the seed
	if err := ValidateSeed(seed); err != nil {
		logger.Warn("Invalid seed input", zap.Error(err))
		return "", err
	}

	logger.Debug("Seed read", zap.Int("length", utf8.RuneCountInString(seed)))
	return seed, nil
}

func readLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(io.LimitReader(r, MaxSeedLength*4))
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", cerr.Wrap(err, "failed to read seed")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
