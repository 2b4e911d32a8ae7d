// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/audit"
	"github.com/developerdao/ddcloud/internal/chain"
	"github.com/developerdao/ddcloud/internal/clipboard"
	"github.com/developerdao/ddcloud/internal/endpoint"
	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/security"
)

// Service is the subset of the account API the workflows need.
type Service interface {
	ListKeys(ctx context.Context, s account.Session) ([]security.Secret, error)
	CreateKey(ctx context.Context, s account.Session) (security.Secret, error)
	DeleteKey(ctx context.Context, s account.Session, key security.Secret) error
	Usage(ctx context.Context, s account.Session) (account.Usage, error)
	Balance(ctx context.Context, s account.Session) (account.Balance, error)
}

// Prompter asks the user to pick or confirm.
type Prompter interface {
	Select(title string, items []string) (int, error)
	FuzzySelect(title string, items []string) (int, error)
	Confirm(question string) (bool, error)
}

// Workflow bundles the collaborators of every key operation.
type Workflow struct {
	svc       Service
	prompt    Prompter
	clip      clipboard.Writer
	chains    chain.Catalog
	endpoints endpoint.Builder
	out       io.Writer
	recorder  audit.Recorder
	printer   *message.Printer
	// operationID ties together every audit entry of one command.
	operationID string
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithCatalog replaces the default chain catalog.
func WithCatalog(c chain.Catalog) Option {
	return func(w *Workflow) { w.chains = c }
}

// WithEndpoints sets the RPC endpoint builder.
func WithEndpoints(b endpoint.Builder) Option {
	return func(w *Workflow) { w.endpoints = b }
}

// WithOutput sets the display stream (stdout by default).
func WithOutput(out io.Writer) Option {
	return func(w *Workflow) { w.out = out }
}

// WithRecorder sets the audit recorder.
func WithRecorder(r audit.Recorder) Option {
	return func(w *Workflow) {
		if r != nil {
			w.recorder = r
		}
	}
}

// WithOperationID sets the id stamped on every audit entry. New generates one
// when it is not given.
func WithOperationID(id string) Option {
	return func(w *Workflow) {
		if id != "" {
			w.operationID = id
		}
	}
}

// WithLanguage sets the locale used for number formatting.
func WithLanguage(tag language.Tag) Option {
	return func(w *Workflow) { w.printer = message.NewPrinter(tag) }
}

// New returns a Workflow over svc.
func New(svc Service, p Prompter, clip clipboard.Writer, opts ...Option) *Workflow {
	w := &Workflow{
		svc:       svc,
		prompt:    p,
		clip:      clip,
		chains:    chain.Default(),
		endpoints: endpoint.New(endpoint.DefaultBaseURL),
		out:       os.Stdout,
		recorder:  audit.Nop{},
		printer:   message.NewPrinter(language.English),

		operationID: uuid.NewString(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Workflow) println(s string) {
	_, _ = fmt.Fprintln(w.out, s)
}

// record writes an audit entry. A broken audit trail is reported but never
// fails the user's command.
func (w *Workflow) record(ctx context.Context, e audit.Entry) {
	if e.OperationID == "" {
		e.OperationID = w.operationID
	}
	if err := w.recorder.Record(ctx, e); err != nil {
		logging.Warnf("audit: could not record %s: %v", e.Action, err)
	}
}

// pickKey redacts keys and lets the user choose one by its redacted form.
func (w *Workflow) pickKey(title string, keys []security.Secret) (security.Secret, security.Redacted, error) {
	redacted, err := security.RedactAll(keys)
	if err != nil {
		return security.Secret{}, security.Redacted{}, err
	}
	labels := make([]string, len(redacted))
	for i, r := range redacted {
		labels[i] = r.String()
	}
	idx, err := w.prompt.Select(title, labels)
	if err != nil {
		return security.Secret{}, security.Redacted{}, selectionErr(err)
	}
	if idx < 0 || idx >= len(keys) {
		return security.Secret{}, security.Redacted{}, fmt.Errorf("%w: %d of %d", ErrInvalidSelection, idx, len(keys))
	}
	return keys[idx], redacted[idx], nil
}
