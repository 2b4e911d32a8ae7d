// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/blake2b"
)

// Placeholder is printed wherever a Secret is formatted by accident.
const Placeholder = "[SECRET]"

// Secret wraps an API key (or anything derived from one, like a full RPC
// endpoint). The value is unexported so it cannot be converted to a string;
// fmt verbs, JSON, text marshaling and slog all render Placeholder.
type Secret struct {
	v string
}

// FromString wraps a raw value.
func FromString(in string) Secret { return Secret{v: in} }

// Reveal returns the raw value. Call sites are the only places where a key can
// reach the clipboard, a sink, the network or (with --unsafe-print) stdout.
func (s Secret) Reveal() string { return s.v }

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return Placeholder }

// GoString redacts %#v.
func (s Secret) GoString() string { return Placeholder }

// Format implements fmt.Formatter so `%v`, `%s`, `%q`, `%x` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	if _, err := io.WriteString(f, Placeholder); err != nil {
		_ = err
	}
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value { return slog.StringValue(Placeholder) }

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(Placeholder) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(Placeholder), nil }

// UnmarshalJSON reads a plain JSON string into the secret. Decoding is the one
// direction where the raw value is needed (API responses).
func (s *Secret) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("secret: %w", err)
	}
	s.v = raw
	return nil
}

// Fingerprint returns a short, stable BLAKE2b-256 digest of the secret. It lets
// the audit trail correlate create/delete of one key without storing it.
func Fingerprint(s Secret) string {
	sum := blake2b.Sum256([]byte(s.v))
	return hex.EncodeToString(sum[:])[:16]
}
