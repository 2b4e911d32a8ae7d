// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sink exports API keys to external secret stores. Every backend
// implements the same Sink interface: store a named secret, return metadata
// identifying where it went.
package sink

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/developerdao/ddcloud/internal/security"
)

// ErrUnknownProvider is returned by New for an unregistered provider name.
var ErrUnknownProvider = errors.New("unknown secret manager provider")

// keyDescription is attached to every stored key.
const keyDescription = "An api key for D_D Cloud made via CLI"

// Metadata identifies a stored secret inside its backend.
type Metadata struct {
	Name       string
	Identifier string
}

// Sink stores a secret under a name.
type Sink interface {
	// Label is the human readable backend name ("AWS Secrets Manager").
	Label() string
	Store(ctx context.Context, name string, secret security.Secret) (Metadata, error)
}

// Config carries backend settings for all providers.
type Config struct {
	AWSRegion    string
	AWSProfile   string
	VaultAddress string
	VaultMount   string
	VaultPath    string
}

type factory func(Config) Sink

var providers = map[string]factory{
	"aws": func(c Config) Sink {
		return NewAWS(WithAWSConfig(AWSConfig{Region: c.AWSRegion, Profile: c.AWSProfile}))
	},
	"vault": func(c Config) Sink {
		return NewVault(WithVaultConfig(VaultConfig{Address: c.VaultAddress, Mount: c.VaultMount, Path: c.VaultPath}))
	},
}

// Providers lists the registered provider names.
func Providers() []string {
	out := make([]string, 0, len(providers))
	for name := range providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New returns the sink registered under provider.
func New(provider string, cfg Config) (Sink, error) {
	f, ok := providers[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProvider, provider, strings.Join(Providers(), ", "))
	}
	return f(cfg), nil
}

// NameFor builds the stored secret name from the visible key prefix.
func NameFor(r security.Redacted) string {
	return "D_D-Cloud-API-Key-" + r.Prefix()
}
