// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"context"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/i18n"
)

// TrackUsage prints the number of RPC calls made in the current cycle.
func (w *Workflow) TrackUsage(ctx context.Context, s account.Session) error {
	u, err := w.svc.Usage(ctx, s)
	if err != nil {
		return err
	}
	w.println(i18n.T("usage.calls", w.printer.Sprintf("%d", u.CallsThisCycle)))
	return nil
}

// ShowBalance prints the account balance in dollars.
func (w *Workflow) ShowBalance(ctx context.Context, s account.Session) error {
	b, err := w.svc.Balance(ctx, s)
	if err != nil {
		return err
	}
	w.println(i18n.T("balance.amount", b.String()))
	return nil
}
