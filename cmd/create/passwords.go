// cmd/create/passwords.go
package create

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/config"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/output"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_io"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/suggest"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/vaultsink"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Overridden in tests.
var (
	newSource      = func() crypto.RandomSource { return crypto.NewSource() }
	newVaultWriter = vaultsink.NewVaultWriter
	seedInput      = os.Stdin
)

var createPasswordsCmd = newPasswordsCmd()

func newPasswordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "passwords",
		Aliases: []string{"password", "pw"},
		Short:   "Suggest four strong passwords derived from a seed",
		Long: `Suggest four strong password candidates and explain why they are stronger.

With a seed, each candidate is an obfuscated variant of it: characters are
swapped for look-alikes, symbols are injected, and the result is padded to at
least 16 characters and shuffled. Without a seed the candidates are random.

Every candidate contains an uppercase letter, a lowercase letter, a digit and
a symbol.

Examples:
  # Hidden prompt for the seed
  passforge create passwords --prompt

  # Seed from a flag, machine readable output
  passforge create passwords --seed password123 --output json

  # Random candidates with argon2id digests, first one stored in Vault
  passforge create passwords --hash argon2id --vault-path secret/myapp/admin`,
		Args: cobra.NoArgs,
		RunE: pf_cli.Wrap(runCreatePasswords),
	}

	cli.AddStringFlag(cmd, "seed", "s", "", "password to derive candidates from (visible in shell history, prefer --prompt)", false)
	cli.AddBoolFlag(cmd, "prompt", "p", false, "read the seed from a hidden prompt or from piped stdin")
	cli.AddBoolFlag(cmd, "parallel", "", false, "synthesize candidates concurrently")
	cli.AddBoolFlag(cmd, "normalize", "", true, "compose the seed to Unicode NFC before synthesis")
	cli.AddStringFlag(cmd, "output", "o", "text", "output format: text, json or yaml", false)
	cli.AddStringFlag(cmd, "hash", "", string(crypto.HashNone), "emit digests: none, bcrypt or argon2id", false)
	cli.AddIntFlag(cmd, "bcrypt-cost", "", 12, "bcrypt cost when --hash bcrypt")
	cli.AddStringFlag(cmd, "vault-path", "", "", "store the first candidate at this Vault KV v2 path (mount/path)", false)
	cli.AddStringFlag(cmd, "vault-field", "", "password", "field name for the stored candidate", false)
	cmd.MarkFlagsMutuallyExclusive("seed", "prompt")
	return cmd
}

func runCreatePasswords(rc *pf_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - resolve configuration and the seed
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	seed, err := readSeed(rc, cmd)
	if err != nil {
		return err
	}
	seed, err = pf_io.PrepareSeed(seed, cfg.Normalize)
	if err != nil {
		return pf_err.NewValidationError("invalid seed", err,
			"Use printable characters only, at most 256 bytes")
	}

	hasher, err := crypto.NewHasher(cfg.HashAlgorithm(), cfg.BcryptCost)
	if err != nil {
		return pf_err.NewValidationError("invalid hash settings", err)
	}

	mode := "obfuscation"
	if seed == "" {
		mode = "random"
	}
	rc.Attributes["mode"] = mode
	rc.Attributes["output"] = cfg.Output
	rc.Attributes["hash"] = cfg.Hash
	logger.Debug("Generating password candidates",
		zap.String("mode", mode),
		zap.Bool("parallel", cfg.Parallel),
		zap.String("seed", crypto.Redact(seed)))

	// INTERVENE - generate, hash and store
	suggestion := suggest.New(newSource(),
		suggest.WithParallel(cfg.Parallel),
		suggest.WithLogger(rc.Log),
	).Suggest(rc.Ctx, seed)

	report := output.Report{Rationale: suggestion.Rationale}
	if hasher.Algorithm() == crypto.HashNone {
		report.Candidates = suggestion.Candidates
	} else {
		hashed, err := hasher.HashAll(suggestion.Candidates)
		if crypto.IsTooLongForHash(err) {
			return pf_err.NewValidationError("candidate is too long for "+cfg.Hash, err,
				"Use --hash argon2id, or a shorter seed")
		}
		if err != nil {
			return pf_err.NewSystemError("failed to hash candidates", err)
		}
		report.Hashes = hashed
		if hasher.Algorithm() == crypto.HashBcrypt && crypto.IsHashCostWeak(hashed[0].Digest, crypto.MinRecommendedBcryptCost) {
			logger.Warn("terminal prompt: bcrypt cost is below the recommended minimum",
				zap.Int("bcrypt_cost", cfg.BcryptCost),
				zap.Int("recommended", crypto.MinRecommendedBcryptCost))
		}
	}

	if cfg.VaultPath != "" {
		kv, err := newVaultWriter()
		if err != nil {
			return err
		}
		where, err := vaultsink.New(kv, cfg.VaultField, rc.Log).Store(rc.Ctx, cfg.VaultPath, suggestion.Candidates[0])
		if err != nil {
			return err
		}
		report.StoredAt = where
		rc.Attributes["vault"] = "stored"
	}

	// EVALUATE - render
	if err := output.Render(cmd.OutOrStdout(), output.Format(cfg.Output), report); err != nil {
		return pf_err.NewSystemError("failed to render output", err)
	}
	logger.Debug("Password candidates rendered", zap.Int("count", len(suggestion.Candidates)))
	return nil
}

func readSeed(rc *pf_io.RuntimeContext, cmd *cobra.Command) (string, error) {
	prompt, _ := cmd.Flags().GetBool("prompt")
	if !prompt {
		return cli.GetStringOrEmpty(cmd, "seed"), nil
	}
	seed, err := pf_io.PromptSecureSeed(rc, seedInput, cmd.ErrOrStderr(), "Enter a password to strengthen (leave empty for random): ")
	if err != nil {
		return "", pf_err.NewValidationError("failed to read seed", err)
	}
	return seed, nil
}
