// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrUnsupportedDatabase is returned for a database type other than
// sqlite, postgres or mysql.
var ErrUnsupportedDatabase = errors.New("unsupported database type")

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

type entryModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Timestamp     time.Time `bun:"timestamp"`
	Username      string    `bun:"username"`
	OperationID   string    `bun:"operation_id"`
	Action        string    `bun:"action"`
	Chain         string    `bun:"chain"`
	RedactedKey   string    `bun:"redacted_key"`
	Fingerprint   string    `bun:"fingerprint"`
	Details       string    `bun:"details"`
}

func (m entryModel) entry() Entry {
	return Entry{
		ID:          m.ID,
		Timestamp:   m.Timestamp.UTC(),
		Username:    m.Username,
		OperationID: m.OperationID,
		Action:      m.Action,
		Chain:       m.Chain,
		RedactedKey: m.RedactedKey,
		Fingerprint: m.Fingerprint,
		Details:     m.Details,
	}
}

// Store is a bun-backed audit trail.
type Store struct {
	bun    *bun.DB
	dbType string
	now    func() time.Time
}

// Open connects to dsn, applies pending migrations and returns a Store.
// dbType is one of sqlite, postgres or mysql.
func Open(dbType, dsn string) (*Store, error) {
	dbType = strings.ToLower(strings.TrimSpace(dbType))
	driverName := dbType
	switch dbType {
	case "sqlite":
		if err := ensureSqliteDir(dsn); err != nil {
			return nil, err
		}
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		driverName = "pgx"
	case "mysql":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbType == "sqlite" {
		// SQLite allows one writer; in-memory databases are per connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(4)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}
	dbLogf("opened %s driver in %s", driverName, time.Since(start))

	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Store{bun: createBunDB(sqlDB, dbType), dbType: dbType, now: time.Now}, nil
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func ensureSqliteDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.bun.Close()
}

// Record inserts e. Timestamp, Username and OperationID are filled in when
// empty.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Action == "" {
		return errors.New("audit entry without action")
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	if e.Username == "" {
		e.Username = currentUsername()
	}
	if e.OperationID == "" {
		e.OperationID = uuid.NewString()
	}
	m := entryModel{
		Timestamp:   e.Timestamp.UTC(),
		Username:    e.Username,
		OperationID: e.OperationID,
		Action:      e.Action,
		Chain:       e.Chain,
		RedactedKey: e.RedactedKey,
		Fingerprint: e.Fingerprint,
		Details:     e.Details,
	}
	if _, err := s.bun.NewInsert().Model(&m).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Action, err)
	}
	dbLogf("recorded %s (%s)", e.Action, e.OperationID)
	return nil
}

// List returns entries newest first. limit <= 0 returns all entries.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	var rows []entryModel
	q := s.bun.NewSelect().Model(&rows).OrderExpr("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out, nil
}

// currentUsername strips a Windows domain prefix from the OS user name.
func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if parts := strings.Split(u.Username, `\`); len(parts) > 1 {
		return parts[1]
	}
	return u.Username
}
