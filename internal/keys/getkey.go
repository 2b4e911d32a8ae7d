// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"context"
	"fmt"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/audit"
	"github.com/developerdao/ddcloud/internal/chain"
	"github.com/developerdao/ddcloud/internal/i18n"
	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/security"
)

// GetKeyOptions tunes GetKey.
type GetKeyOptions struct {
	// RevealRaw prints the raw endpoint instead of copying it to the
	// clipboard. Bound to --unsafe-print.
	RevealRaw bool
	// ChainID preselects a chain and skips the chain prompt.
	ChainID string
}

// GetKey lets the user pick a chain and one of the account's keys, then
// shows the redacted endpoint and hands over the raw one. An account without
// keys gets exactly one new key.
func (w *Workflow) GetKey(ctx context.Context, s account.Session, opts GetKeyOptions) error {
	c, err := w.selectChain(opts.ChainID)
	if err != nil {
		return err
	}
	logging.Debugf("chain selected: %s", c.ID)

	keys, err := w.svc.ListKeys(ctx, s)
	if err != nil {
		return err
	}
	logging.Debugf("fetched %d api keys", len(keys))

	var (
		key      security.Secret
		redacted security.Redacted
	)
	if len(keys) == 0 {
		key, err = w.svc.CreateKey(ctx, s)
		if err != nil {
			return err
		}
		if redacted, err = key.Redact(); err != nil {
			return err
		}
		w.record(ctx, audit.ForKey(audit.ActionCreateKey, key, redacted))
	} else {
		key, redacted, err = w.pickKey(i18n.T("keys.select_copy"), keys)
		if err != nil {
			return err
		}
	}

	return w.reveal(ctx, c, key, redacted, opts.RevealRaw)
}

func (w *Workflow) selectChain(id string) (chain.Descriptor, error) {
	if id != "" {
		return w.chains.Lookup(id)
	}
	idx, err := w.prompt.FuzzySelect(i18n.T("chain.prompt"), w.chains.Names())
	if err != nil {
		return chain.Descriptor{}, selectionErr(err)
	}
	return w.chains.At(idx)
}

func (w *Workflow) reveal(ctx context.Context, c chain.Descriptor, key security.Secret, redacted security.Redacted, revealRaw bool) error {
	shown, err := w.endpoints.Redacted(c, redacted)
	if err != nil {
		return err
	}
	raw, err := w.endpoints.Raw(c, key)
	if err != nil {
		return err
	}

	w.println(i18n.T("keys.endpoint_header", c.Name))
	w.println(shown)

	mode := "clipboard"
	if revealRaw {
		mode = "stdout"
		w.println(raw.Reveal())
	} else {
		if err := w.clip.SetText(raw.Reveal()); err != nil {
			return fmt.Errorf("copy endpoint: %w", err)
		}
		w.println(i18n.T("keys.copied"))
	}

	e := audit.ForKey(audit.ActionRevealKey, key, redacted)
	e.Chain = c.ID
	e.Details = "mode=" + mode
	w.record(ctx, e)
	return nil
}
