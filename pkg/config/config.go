// pkg/config/config.go

package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved passforge configuration.
type Config struct {
	Output     string `mapstructure:"output" json:"output" validate:"oneof=text json yaml"`
	Hash       string `mapstructure:"hash" json:"hash" validate:"oneof=none bcrypt argon2id"`
	BcryptCost int    `mapstructure:"bcrypt_cost" json:"bcrypt_cost" validate:"min=4,max=31"`
	Parallel   bool   `mapstructure:"parallel" json:"parallel"`
	Normalize  bool   `mapstructure:"normalize" json:"normalize"`
	VaultPath  string `mapstructure:"vault_path" json:"vault_path,omitempty" validate:"omitempty,printascii"`
	VaultField string `mapstructure:"vault_field" json:"vault_field" validate:"required"`
}

// HashAlgorithm returns the configured digest algorithm.
func (c *Config) HashAlgorithm() crypto.HashAlgorithm {
	return crypto.HashAlgorithm(c.Hash)
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// ConfigFile is an explicit config path; a missing file is an error.
	ConfigFile string
	// EnvFile defaults to .env in the working directory; a missing file is ignored.
	EnvFile string
	// SearchDir is where .passforge.yaml is looked up; defaults to $HOME.
	SearchDir string
}

// Defaults are applied before env, file and flags.
var Defaults = map[string]any{
	"output":      "text",
	"hash":        string(crypto.HashNone),
	"bcrypt_cost": 12,
	"parallel":    false,
	"normalize":   true,
	"vault_path":  "",
	"vault_field": "password",
}

var validate = validator.New()

// Load resolves configuration into v and validates the result.
// Flags must already be bound to v.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}
	cli.SetViperEnvPrefix(v, shared.EnvPrefix)

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, pf_err.NewValidationError("failed to decode configuration", err,
			"Check the types of values in your config file and PASSFORGE_* variables")
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, pf_err.NewValidationError("invalid configuration", err,
			"--output must be one of: text, json, yaml",
			"--hash must be one of: none, bcrypt, argon2id",
			"bcrypt_cost must be between 4 and 31")
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		path = shared.DotEnvFile
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return cerr.Wrapf(err, "stat %s", path)
	}
	// Existing environment wins over .env entries.
	if err := godotenv.Load(path); err != nil {
		return pf_err.NewValidationError("failed to load env file", err,
			"Check "+path+" for malformed KEY=value lines")
	}
	return nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return pf_err.NewValidationError("failed to read config file", err,
				"Check that "+opts.ConfigFile+" exists and is valid YAML")
		}
		return nil
	}

	dir := opts.SearchDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = home
	}
	v.AddConfigPath(filepath.Clean(dir))
	v.SetConfigName(shared.ConfigFileName)
	v.SetConfigType(shared.ConfigFileType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return pf_err.NewValidationError("failed to read config file", err)
	}
	return nil
}
