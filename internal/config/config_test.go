package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/developerdao/ddcloud/internal/config"
)

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Account.BaseURL != "https://api.cloud.developerdao.com" {
		t.Fatalf("unexpected account base url %q", got.Account.BaseURL)
	}
	if got.Account.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", got.Account.Timeout)
	}
	if !got.Audit.Enabled || got.Audit.Database.Type != "sqlite" {
		t.Fatalf("unexpected audit defaults: %+v", got.Audit)
	}
	// The AWS default chain picks the region unless one is configured.
	if got.AWS.Region != "" {
		t.Fatalf("expected empty aws region, got %q", got.AWS.Region)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)

	c := cfg.Config{Language: "en"}
	c.Account.BaseURL = "https://api.example.test"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestLoadConfig_ReadsExplicitFileAndEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	yaml := "language: de\naccount:\n  base_url: https://api.example.test\n  email: dev@example.test\naudit:\n  enabled: false\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("DDCLOUD_RPC_BASE_URL", "https://rpc.example.test/rpc")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Account.Email != "dev@example.test" {
		t.Fatalf("unexpected email %q", got.Account.Email)
	}
	if got.Audit.Enabled {
		t.Fatalf("expected audit disabled from file")
	}
	if got.RPC.BaseURL != "https://rpc.example.test/rpc" {
		t.Fatalf("expected env override, got %q", got.RPC.BaseURL)
	}
	if got.Vault.Mount != "secret" {
		t.Fatalf("expected default vault mount, got %q", got.Vault.Mount)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "de" {
		t.Fatalf("expected flag override, got %q", got.Language)
	}
}
