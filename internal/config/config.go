// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads ddcloud settings from defaults, a YAML file, DDCLOUD_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full ddcloud configuration.
type Config struct {
	Language string        `mapstructure:"language" yaml:"language"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Account  AccountConfig `mapstructure:"account" yaml:"account"`
	RPC      RPCConfig     `mapstructure:"rpc" yaml:"rpc"`
	Audit    AuditConfig   `mapstructure:"audit" yaml:"audit"`
	AWS      AWSConfig     `mapstructure:"aws" yaml:"aws"`
	Vault    VaultConfig   `mapstructure:"vault" yaml:"vault"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AccountConfig points at the account API. Email only pre-fills the login
// prompt; passwords are never read from the config file.
type AccountConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Email   string        `mapstructure:"email" yaml:"email"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type RPCConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

type AuditConfig struct {
	Enabled  bool           `mapstructure:"enabled" yaml:"enabled"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type AWSConfig struct {
	Region  string `mapstructure:"region" yaml:"region"`
	Profile string `mapstructure:"profile" yaml:"profile"`
}

type VaultConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
	Mount   string `mapstructure:"mount" yaml:"mount"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// Defaults returns the built-in defaults keyed by viper path.
func Defaults() map[string]any {
	auditDSN := "ddcloud-audit.db"
	if dir, err := os.UserConfigDir(); err == nil {
		auditDSN = filepath.Join(dir, "ddcloud", "audit.db")
	}
	return map[string]any{
		"language":            "en",
		"log.level":           "warn",
		"account.base_url":    "https://api.cloud.developerdao.com",
		"account.timeout":     30 * time.Second,
		"rpc.base_url":        "https://api.cloud.developerdao.com/rpc",
		"audit.enabled":       true,
		"audit.database.type": "sqlite",
		"audit.database.dsn":  auditDSN,
		"aws.region":          "",
		"vault.mount":         "secret",
		"vault.path":          "ddcloud",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "ddcloud")
		default:
			configDir = "/etc/ddcloud"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "ddcloud")
	}

	return filepath.Join(configDir, "ddcloud.yaml"), nil
}

// GetConfigPath exposes the resolved config file location.
func GetConfigPath(system bool) (string, error) { return getConfigPath(system) }

// LoadConfig resolves T from defaults, the first ddcloud.yaml found (or the
// explicit path), DDCLOUD_* env vars and the command's flags.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("ddcloud")
	v.SetConfigType("yaml")

	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, readErr
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("ddcloud")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	// Not-found is reported after unmarshaling so callers still get defaults.
	return c, readErr
}

// WriteConfigFile persists c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
