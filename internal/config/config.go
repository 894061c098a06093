// Package config resolves program settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. AGEQUIZ_LOG_LEVEL.
const EnvPrefix = "AGEQUIZ"

// Keys shared by flags, environment and config file.
const (
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeyNoAltScreen = "no-alt-screen"
)

// Config holds the resolved settings.
type Config struct {
	LogFile     string
	LogLevel    string
	NoAltScreen bool

	// Source is the config file that was read, or "" if none.
	Source string
}

// ForCmd binds a command's flags and environment to a fresh viper instance
// and reads agequiz.{yaml,toml,json} if one exists. Extra search paths are
// consulted before the defaults.
func ForCmd(cmd *cobra.Command, paths ...string) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("agequiz")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/agequiz")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

// Load resolves the settings for cmd.
func Load(cmd *cobra.Command, paths ...string) (Config, error) {
	v, err := ForCmd(cmd, paths...)
	if err != nil {
		return Config{}, err
	}
	return FromViper(v), nil
}

// FromViper reads the known keys out of v.
func FromViper(v *viper.Viper) Config {
	return Config{
		LogFile:     v.GetString(KeyLogFile),
		LogLevel:    v.GetString(KeyLogLevel),
		NoAltScreen: v.GetBool(KeyNoAltScreen),
		Source:      v.ConfigFileUsed(),
	}
}
