// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads kvedit's configuration from defaults, config files,
// KVEDIT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EditorConfig overrides the editor's display strings. Empty fields fall
// back to the active locale.
type EditorConfig struct {
	KeyPlaceholder   string `mapstructure:"key_placeholder" yaml:"key_placeholder,omitempty"`
	ValuePlaceholder string `mapstructure:"value_placeholder" yaml:"value_placeholder,omitempty"`
	SubmitLabel      string `mapstructure:"submit_label" yaml:"submit_label,omitempty"`
	ConflictsMessage string `mapstructure:"conflicts_message" yaml:"conflicts_message,omitempty"`
	CopyButtonTitle  string `mapstructure:"copy_button_title" yaml:"copy_button_title,omitempty"`
	ResetButtonTitle string `mapstructure:"reset_button_title" yaml:"reset_button_title,omitempty"`
	ResetConfirmText string `mapstructure:"reset_confirm_text" yaml:"reset_confirm_text,omitempty"`
}

type Config struct {
	Language    string       `mapstructure:"language" yaml:"language"`
	LogFile     string       `mapstructure:"log_file" yaml:"log_file,omitempty"`
	Debug       bool         `mapstructure:"debug" yaml:"debug"`
	Suggestions []string     `mapstructure:"suggestions" yaml:"suggestions,omitempty"`
	Editor      EditorConfig `mapstructure:"editor" yaml:"editor"`
}

// Defaults are the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"language": "en",
		"debug":    false,
	}
}

// flags that are not configuration keys
var skippedFlags = map[string]bool{
	"config":  true,
	"help":    true,
	"version": true,
	"system":  true,
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "kvedit")
		default: // Linux, macOS, etc.
			configDir = "/etc/kvedit"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "kvedit")
	}

	return filepath.Join(configDir, "kvedit.yaml"), nil
}

func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("kvedit")
	v.SetConfigType("yaml")

	// 3. Explicit config file path from --config wins over the search paths.
	if configFilePath != nil && *configFilePath != "" {
		v.SetConfigFile(*configFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// 6. A `.kvedit.yaml` next to the edited files overrides the rest.
	mergeLocalConfig(v)

	// 7. Read from environment variables
	v.SetEnvPrefix("kvedit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 8. Flags, named like the keys with dashes for underscores
	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if skippedFlags[f.Name] || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// mergeLocalConfig merges `.kvedit.yaml` from the current directory into
// the configuration if present.
func mergeLocalConfig(v *viper.Viper) {
	localConfigFile := ".kvedit.yaml"
	if _, err := os.Stat(localConfigFile); err == nil {
		v.SetConfigFile(localConfigFile)
		// A malformed local file must not break startup.
		_ = v.MergeInConfig()
		v.SetConfigFile("")
	}
}

// WriteConfigFile writes c to the user (or system) config file and
// returns its path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
