// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerdao/ddcloud/internal/security"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("oracle", "whatever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedDatabase))
}

func TestOpen_CreatesDirectoryAndIsRerunnable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "audit.db")

	s, err := Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), Entry{Action: ActionCreateKey}))
	require.NoError(t, s.Close())

	// Second open must skip the applied migration and keep the data.
	s, err = Open("sqlite", dsn)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	got, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRecordAndList_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	key := security.FromString("ABCDE1234567890FGHIJ")
	red, err := security.Redact(key)
	require.NoError(t, err)

	require.NoError(t, s.Record(ctx, ForKey(ActionCreateKey, key, red)))
	reveal := ForKey(ActionRevealKey, key, red)
	reveal.Chain = "eth"
	require.NoError(t, s.Record(ctx, reveal))
	require.NoError(t, s.Record(ctx, ForKey(ActionDeleteKey, key, red)))

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ActionDeleteKey, got[0].Action)
	assert.Equal(t, ActionRevealKey, got[1].Action)
	assert.Equal(t, "eth", got[1].Chain)
	assert.Equal(t, ActionCreateKey, got[2].Action)

	for _, e := range got {
		assert.Equal(t, red.String(), e.RedactedKey)
		assert.Equal(t, security.Fingerprint(key), e.Fingerprint)
		assert.NotEmpty(t, e.OperationID)
		assert.NotEmpty(t, e.Username)
		assert.NotContains(t, e.RedactedKey, "1234567890")
	}

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecord_RequiresAction(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Record(context.Background(), Entry{}))
}

func TestRecord_KeepsProvidedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, s.Record(ctx, Entry{Action: ActionExportKey, Timestamp: ts, Username: "alice", OperationID: "op-1", Details: "aws"}))

	got, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "op-1", got[0].OperationID)
	assert.Equal(t, "aws", got[0].Details)
	assert.True(t, ts.Equal(got[0].Timestamp), "timestamp %s", got[0].Timestamp)
}

func TestExport_RoundTripsThroughZstd(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, Entry{Action: ActionCreateKey, RedactedKey: "ABCDE*****FGHIJ"}))
	require.NoError(t, s.Record(ctx, Entry{Action: ActionDeleteKey, RedactedKey: "ABCDE*****FGHIJ"}))

	var buf bytes.Buffer
	n, err := s.Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// zstd magic number
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0x28, 0xb5, 0x2f, 0xfd}))

	doc, err := ReadExport(&buf)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatVersion, doc.Version)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, ActionDeleteKey, doc.Entries[0].Action)
}

func TestReadExport_RejectsGarbage(t *testing.T) {
	_, err := ReadExport(strings.NewReader("not zstd"))
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\n CREATE INDEX i ON a (x);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a (x)"}, got)
}

func TestMemoryAndNop(t *testing.T) {
	var m Memory
	require.NoError(t, m.Record(context.Background(), Entry{Action: ActionRevealKey}))
	assert.Len(t, m.Entries, 1)
	assert.NoError(t, Nop{}.Record(context.Background(), Entry{Action: ActionRevealKey}))
}
