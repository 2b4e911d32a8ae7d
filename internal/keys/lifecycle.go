// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"context"
	"errors"
	"fmt"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/audit"
	"github.com/developerdao/ddcloud/internal/i18n"
	"github.com/developerdao/ddcloud/internal/security"
	"github.com/developerdao/ddcloud/internal/sink"
	"github.com/developerdao/ddcloud/internal/tui"
)

// ExportOptions tunes CreateKey.
type ExportOptions struct {
	// Sink receives the new key instead of the clipboard when set.
	Sink sink.Sink
}

// CreateKey issues a new key. Without a sink the raw key goes to the
// clipboard; with one it is stored there and only its metadata is shown.
// A key that was created stays created if a later step fails.
func (w *Workflow) CreateKey(ctx context.Context, s account.Session, opts ExportOptions) error {
	key, err := w.svc.CreateKey(ctx, s)
	if err != nil {
		return err
	}
	redacted, err := key.Redact()
	if err != nil {
		return err
	}
	w.record(ctx, audit.ForKey(audit.ActionCreateKey, key, redacted))

	if opts.Sink == nil {
		if err := w.clip.SetText(key.Reveal()); err != nil {
			return fmt.Errorf("copy api key: %w", err)
		}
		w.println(i18n.T("keys.new_copied", redacted))
		return nil
	}

	md, err := w.ExportKey(ctx, key, opts.Sink)
	if err != nil {
		return err
	}
	w.println(i18n.T("keys.new_exported", redacted, opts.Sink.Label(), md.Name, md.Identifier))
	return nil
}

// ExportKey stores key in dst under a name derived from its visible prefix.
func (w *Workflow) ExportKey(ctx context.Context, key security.Secret, dst sink.Sink) (sink.Metadata, error) {
	redacted, err := key.Redact()
	if err != nil {
		return sink.Metadata{}, err
	}
	md, err := dst.Store(ctx, sink.NameFor(redacted), key)
	if err != nil {
		return sink.Metadata{}, fmt.Errorf("export to %s: %w", dst.Label(), err)
	}

	e := audit.ForKey(audit.ActionExportKey, key, redacted)
	e.Details = fmt.Sprintf("sink=%s name=%s id=%s", dst.Label(), md.Name, md.Identifier)
	w.record(ctx, e)
	return md, nil
}

// DeleteKey revokes a key chosen by the user after an explicit confirmation.
func (w *Workflow) DeleteKey(ctx context.Context, s account.Session) error {
	keys, err := w.svc.ListKeys(ctx, s)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return ErrNoKeysFound
	}

	key, redacted, err := w.pickKey(i18n.T("keys.select_delete"), keys)
	if err != nil {
		return err
	}

	ok, err := w.prompt.Confirm(i18n.T("keys.confirm_delete", redacted))
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			return ErrDeletionAborted
		}
		return err
	}
	if !ok {
		return ErrDeletionAborted
	}

	if err := w.svc.DeleteKey(ctx, s, key); err != nil {
		return err
	}
	w.println(i18n.T("keys.deleted", redacted))
	w.record(ctx, audit.ForKey(audit.ActionDeleteKey, key, redacted))
	return nil
}
