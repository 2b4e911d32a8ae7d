// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"io"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/audit"
	"github.com/developerdao/ddcloud/internal/clipboard"
	"github.com/developerdao/ddcloud/internal/config"
	"github.com/developerdao/ddcloud/internal/keys"
	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/sink"
	"github.com/developerdao/ddcloud/internal/tui"
)

// accountService is the account API as the CLI uses it.
type accountService interface {
	keys.Service
	Login(ctx context.Context, creds account.Credentials) (account.Session, error)
}

// prompter extends the workflow prompts with the login inputs.
type prompter interface {
	keys.Prompter
	Input(label, initial string) (string, error)
	Password(label string) (string, error)
	Interactive() bool
}

// auditStore is the audit trail as the history command uses it.
type auditStore interface {
	audit.Recorder
	List(ctx context.Context, limit int) ([]audit.Entry, error)
	Export(ctx context.Context, w io.Writer) (int, error)
	Close() error
}

// Factories are package variables so tests can inject fakes.
var (
	newAccountService = func(cfg config.Config) (accountService, error) {
		c, err := account.New(cfg.Account.BaseURL,
			account.WithTimeout(cfg.Account.Timeout),
			account.WithUserAgent(userAgent()),
		)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	newPrompter  = func() prompter { return tui.NewStd() }
	newClipboard = func() clipboard.Writer { return clipboard.NewSystem() }
	newSink      = func(provider string, cfg config.Config) (sink.Sink, error) {
		return sink.New(provider, sink.Config{
			AWSRegion:    cfg.AWS.Region,
			AWSProfile:   cfg.AWS.Profile,
			VaultAddress: cfg.Vault.Address,
			VaultMount:   cfg.Vault.Mount,
			VaultPath:    cfg.Vault.Path,
		})
	}
	openAudit = func(cfg config.Config) (auditStore, error) {
		s, err := audit.Open(cfg.Audit.Database.Type, cfg.Audit.Database.Dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

// recorderFor opens the audit trail for a key command. Any failure leaves
// the command running without an audit trail.
func recorderFor(cfg config.Config) (audit.Recorder, func()) {
	if !cfg.Audit.Enabled {
		return audit.Nop{}, func() {}
	}
	s, err := openAudit(cfg)
	if err != nil {
		logging.Warnf("audit trail disabled: %v", err)
		return audit.Nop{}, func() {}
	}
	return s, func() {
		if err := s.Close(); err != nil {
			logging.Warnf("closing audit trail: %v", err)
		}
	}
}
