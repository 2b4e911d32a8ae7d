// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"errors"

	"github.com/developerdao/ddcloud/internal/tui"
)

var (
	// ErrSelectionAborted is returned when the user cancels a selection.
	ErrSelectionAborted = errors.New("selection aborted")
	// ErrDeletionAborted is returned when the delete confirmation is declined.
	ErrDeletionAborted = errors.New("api key deletion aborted")
	// ErrNoKeysFound is returned by DeleteKey for an account without keys.
	ErrNoKeysFound = errors.New("no api keys found")
	// ErrInvalidSelection is returned when a prompt reports an index outside
	// the offered list.
	ErrInvalidSelection = errors.New("invalid selection")
)

// IsUserAbort reports whether err is a deliberate stop by the user rather
// than a failure.
func IsUserAbort(err error) bool {
	return errors.Is(err, ErrSelectionAborted) ||
		errors.Is(err, ErrDeletionAborted) ||
		errors.Is(err, tui.ErrCancelled)
}

func selectionErr(err error) error {
	if errors.Is(err, tui.ErrCancelled) {
		return ErrSelectionAborted
	}
	return err
}
