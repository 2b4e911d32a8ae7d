// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// VisibleChars is the number of characters kept at each end.
	VisibleChars = 5
	// MaskLen is the fixed length of the mask, independent of the key length.
	MaskLen = 17
	// MaskChar fills the hidden middle.
	MaskChar = '*'
	// MinSecretLen is the shortest key that can be redacted without the two
	// visible ends overlapping.
	MinSecretLen = 2 * VisibleChars
)

// ErrInvalidSecretLength is returned when a key is too short to redact.
var ErrInvalidSecretLength = errors.New("invalid secret length")

// Redacted is the display-safe view of a Secret. It never holds more than the
// first and last VisibleChars characters of the original.
type Redacted struct {
	s string
}

// String returns the masked form.
func (r Redacted) String() string { return r.s }

// Prefix returns the visible leading characters.
func (r Redacted) Prefix() string {
	runes := []rune(r.s)
	if len(runes) < VisibleChars {
		return r.s
	}
	return string(runes[:VisibleChars])
}

// Redact masks s as prefix + 17 mask chars + suffix. Keys shorter than
// MinSecretLen fail with ErrInvalidSecretLength.
func Redact(s Secret) (Redacted, error) {
	runes := []rune(s.v)
	if len(runes) < MinSecretLen {
		return Redacted{}, fmt.Errorf("%w: need at least %d characters, got %d", ErrInvalidSecretLength, MinSecretLen, len(runes))
	}
	var b strings.Builder
	b.Grow(len(s.v))
	b.WriteString(string(runes[:VisibleChars]))
	b.WriteString(strings.Repeat(string(MaskChar), MaskLen))
	b.WriteString(string(runes[len(runes)-VisibleChars:]))
	return Redacted{s: b.String()}, nil
}

// Redact is a method form of Redact.
func (s Secret) Redact() (Redacted, error) { return Redact(s) }

// RedactAll redacts every key in order. The first failure aborts.
func RedactAll(secrets []Secret) ([]Redacted, error) {
	out := make([]Redacted, 0, len(secrets))
	for i, s := range secrets {
		r, err := Redact(s)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}
