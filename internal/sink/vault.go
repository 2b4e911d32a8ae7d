// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package sink

import (
	"context"
	"fmt"
	"path"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/developerdao/ddcloud/internal/security"
)

// KVWriter is the subset of the Vault KV v2 API the sink needs.
type KVWriter interface {
	Put(ctx context.Context, secretPath string, data map[string]interface{}, opts ...vaultapi.KVOption) (*vaultapi.KVSecret, error)
}

// VaultConfig holds Vault settings. Address and token fall back to the
// standard VAULT_ADDR / VAULT_TOKEN environment variables.
type VaultConfig struct {
	Address string
	Mount   string
	Path    string
}

// Vault stores keys in a KV v2 secrets engine.
type Vault struct {
	cfg VaultConfig
	kv  KVWriter
}

type VaultOption func(*Vault)

// WithVaultConfig sets the adapter configuration.
func WithVaultConfig(cfg VaultConfig) VaultOption {
	return func(v *Vault) {
		v.cfg = cfg
	}
}

// WithKVWriter injects a custom KV v2 client.
func WithKVWriter(kv KVWriter) VaultOption {
	return func(v *Vault) {
		if kv != nil {
			v.kv = kv
		}
	}
}

// NewVault constructs the Vault sink.
func NewVault(opts ...VaultOption) *Vault {
	v := &Vault{cfg: VaultConfig{Mount: "secret", Path: "ddcloud"}}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	if v.cfg.Mount == "" {
		v.cfg.Mount = "secret"
	}
	return v
}

func (v *Vault) Label() string { return "HashiCorp Vault" }

func (v *Vault) ensureClient() error {
	if v.kv != nil {
		return nil
	}
	cfg := vaultapi.DefaultConfig()
	if cfg.Error != nil {
		return fmt.Errorf("vault: default config: %w", cfg.Error)
	}
	if v.cfg.Address != "" {
		cfg.Address = v.cfg.Address
	}
	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("vault: new client: %w", err)
	}
	v.kv = client.KVv2(v.cfg.Mount)
	return nil
}

// Store writes the key under <path>/<name> and reports the written version.
func (v *Vault) Store(ctx context.Context, name string, secret security.Secret) (Metadata, error) {
	if err := v.ensureClient(); err != nil {
		return Metadata{}, err
	}
	p := path.Join(strings.Trim(v.cfg.Path, "/"), name)
	out, err := v.kv.Put(ctx, p, map[string]interface{}{
		"apikey":      secret.Reveal(),
		"description": keyDescription,
	})
	if err != nil {
		return Metadata{}, fmt.Errorf("vault: write %s/%s: %w", v.cfg.Mount, p, err)
	}
	md := Metadata{Name: v.cfg.Mount + "/" + p, Identifier: "None"}
	if out != nil && out.VersionMetadata != nil {
		md.Identifier = fmt.Sprintf("version %d", out.VersionMetadata.Version)
	}
	return md, nil
}
