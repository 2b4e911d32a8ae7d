// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package endpoint assembles RPC URLs from a chain and a key representation.
package endpoint

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/developerdao/ddcloud/internal/chain"
	"github.com/developerdao/ddcloud/internal/security"
)

// DefaultBaseURL is the RPC gateway of Developer DAO Cloud.
const DefaultBaseURL = "https://api.cloud.developerdao.com/rpc"

// ErrInvalidSecretEncoding is returned when a key cannot be placed in a URL
// path segment as-is.
var ErrInvalidSecretEncoding = errors.New("invalid secret encoding")

// Builder joins the base URL, the chain id and a key representation.
type Builder struct {
	BaseURL string
}

// New returns a Builder for baseURL, falling back to DefaultBaseURL.
func New(baseURL string) Builder {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return Builder{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Build returns <base>/<chain id>/<repr>. Keys are server-issued opaque
// tokens, so instead of escaping, anything that would change the path shape
// is rejected.
func (b Builder) Build(c chain.Descriptor, repr string) (string, error) {
	if err := validateSegment(repr); err != nil {
		return "", err
	}
	base := strings.TrimRight(b.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "/" + c.ID + "/" + repr, nil
}

// Redacted builds the display-safe endpoint.
func (b Builder) Redacted(c chain.Descriptor, r security.Redacted) (string, error) {
	return b.Build(c, r.String())
}

// Raw builds the real endpoint. The result stays wrapped in a Secret, so
// printing or logging it by mistake shows a placeholder.
func (b Builder) Raw(c chain.Descriptor, s security.Secret) (security.Secret, error) {
	u, err := b.Build(c, s.Reveal())
	if err != nil {
		return security.Secret{}, err
	}
	return security.FromString(u), nil
}

func validateSegment(repr string) error {
	if repr == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidSecretEncoding)
	}
	if !utf8.ValidString(repr) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidSecretEncoding)
	}
	for i, r := range repr {
		if r == '/' {
			return fmt.Errorf("%w: '/' at position %d", ErrInvalidSecretEncoding, i)
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character at position %d", ErrInvalidSecretEncoding, i)
		}
	}
	return nil
}
