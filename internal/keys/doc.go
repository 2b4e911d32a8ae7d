// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keys drives the interactive API key workflows: selecting a key and
// revealing its RPC endpoint, creating, exporting and deleting keys, and the
// usage and balance reports.
//
// Keys are only ever shown in redacted form. The raw value leaves the process
// through exactly three doors: the clipboard, a secret sink, or stdout when
// the caller explicitly asked for an unsafe print.
package keys // import "github.com/developerdao/ddcloud/internal/keys"
