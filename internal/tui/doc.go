// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive prompts (selection lists, fuzzy
// filtering, confirmation dialogs and masked input) on top of bubbletea.
// Every prompt returns ErrCancelled when the user presses Esc or Ctrl+C.
package tui // import "github.com/developerdao/ddcloud/internal/tui"
