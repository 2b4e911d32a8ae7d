// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"
	"time"

	"github.com/developerdao/ddcloud/internal/security"
)

// Action names recorded in the trail.
const (
	ActionCreateKey = "CREATE_KEY"
	ActionRevealKey = "REVEAL_KEY"
	ActionExportKey = "EXPORT_KEY"
	ActionDeleteKey = "DELETE_KEY"
)

// Entry is one audit record.
type Entry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Username    string    `json:"username"`
	OperationID string    `json:"operation_id"`
	Action      string    `json:"action"`
	Chain       string    `json:"chain,omitempty"`
	RedactedKey string    `json:"redacted_key,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Details     string    `json:"details,omitempty"`
}

// ForKey builds an entry for an action on key. Only the redacted form and
// the fingerprint are kept.
func ForKey(action string, key security.Secret, redacted security.Redacted) Entry {
	return Entry{
		Action:      action,
		RedactedKey: redacted.String(),
		Fingerprint: security.Fingerprint(key),
	}
}

// Recorder persists entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

// Memory keeps entries in a slice (tests).
type Memory struct {
	Entries []Entry
}

func (m *Memory) Record(_ context.Context, e Entry) error {
	m.Entries = append(m.Entries, e)
	return nil
}
