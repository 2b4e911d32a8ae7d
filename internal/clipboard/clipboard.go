// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard hands text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard backend exists (for
// example a headless session without xclip/xsel/wl-copy) or writing fails.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Writer is anything that can receive clipboard text.
type Writer interface {
	SetText(text string) error
}

// System writes to the OS clipboard.
type System struct {
	// writeAll and unsupported are swapped in tests.
	writeAll    func(string) error
	unsupported func() bool
}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// SetText copies text to the clipboard. The text is never part of the error.
func (s *System) SetText(text string) error {
	if s.unsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboardUnavailable)
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard for tests and non-interactive runs.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// SetText records text, or returns m.Err when set.
func (m *Memory) SetText(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
