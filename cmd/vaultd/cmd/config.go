package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding flags.
	EnvPrefix = "VAULTD"

	// FlagConfig points at an explicit config file.
	FlagConfig = "config"

	configFileName = "vaultd.toml"
)

// DefaultNodeHome is the default home directory of vaultd.
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".vaultd")
}

// loadConfig reads the config file and environment into v and copies every
// value onto the flags of cmd that were not set on the command line.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	path, explicit, err := configPath(cmd)
	if err != nil {
		return err
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	return bindFlags(v, cmd.Flags())
}

func configPath(cmd *cobra.Command) (string, bool, error) {
	path, err := cmd.Flags().GetString(FlagConfig)
	if err != nil {
		return "", false, err
	}
	if path != "" {
		return path, true, nil
	}

	home := DefaultNodeHome
	if f := cmd.Flags().Lookup(flags.FlagHome); f != nil && f.Value.String() != "" {
		home = f.Value.String()
	}

	path = filepath.Join(home, "config", configFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	return path, false, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == FlagConfig || !v.IsSet(f.Name) {
			return
		}

		val, err := cast.ToStringE(v.Get(f.Name))
		if err != nil {
			bindErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			bindErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
		}
	})
	return bindErr
}
