// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package audit keeps a local trail of key lifecycle actions (create, reveal,
// export, delete). Entries carry the redacted key and a fingerprint only; raw
// keys are never written. The store runs on SQLite by default and can point
// at PostgreSQL or MySQL for shared team machines.
package audit // import "github.com/developerdao/ddcloud/internal/audit"
