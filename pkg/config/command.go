// pkg/config/command.go

package config

import (
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/passforge/pkg/pf_err"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ConfigFlag is the persistent flag carrying an explicit config path.
const ConfigFlag = "config"

// FromCommand binds cmd's flags into a fresh viper and resolves the configuration.
func FromCommand(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if err := cli.BindFlagsToViper(cmd, v); err != nil {
		return nil, pf_err.NewInternalError("failed to bind flags", err)
	}

	var opts LoadOptions
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		opts.ConfigFile = f.Value.String()
	}
	return Load(v, opts)
}
