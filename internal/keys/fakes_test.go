// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"bytes"
	"context"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/audit"
	"github.com/developerdao/ddcloud/internal/clipboard"
	"github.com/developerdao/ddcloud/internal/security"
	"github.com/developerdao/ddcloud/internal/sink"
)

type fakeService struct {
	keys    []security.Secret
	created security.Secret
	usage   account.Usage
	balance account.Balance

	listErr, createErr, deleteErr, reportErr error

	listCalls, createCalls int
	deleted                []security.Secret
}

func (f *fakeService) ListKeys(context.Context, account.Session) ([]security.Secret, error) {
	f.listCalls++
	return f.keys, f.listErr
}

func (f *fakeService) CreateKey(context.Context, account.Session) (security.Secret, error) {
	f.createCalls++
	if f.createErr != nil {
		return security.Secret{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeService) DeleteKey(_ context.Context, _ account.Session, key security.Secret) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeService) Usage(context.Context, account.Session) (account.Usage, error) {
	return f.usage, f.reportErr
}

func (f *fakeService) Balance(context.Context, account.Session) (account.Balance, error) {
	return f.balance, f.reportErr
}

type fakePrompter struct {
	chainIdx  int
	chainErr  error
	keyIdx    int
	keyErr    error
	confirm   bool
	confirmEr error

	chainCalls, selectCalls, confirmCalls int
	offered                               []string
	question                              string
}

func (p *fakePrompter) FuzzySelect(string, []string) (int, error) {
	p.chainCalls++
	return p.chainIdx, p.chainErr
}

func (p *fakePrompter) Select(_ string, items []string) (int, error) {
	p.selectCalls++
	p.offered = items
	return p.keyIdx, p.keyErr
}

func (p *fakePrompter) Confirm(q string) (bool, error) {
	p.confirmCalls++
	p.question = q
	return p.confirm, p.confirmEr
}

type fakeSink struct {
	md    sink.Metadata
	err   error
	name  string
	value string
}

func (s *fakeSink) Label() string { return "Fake Vault" }

func (s *fakeSink) Store(_ context.Context, name string, key security.Secret) (sink.Metadata, error) {
	s.name, s.value = name, key.Reveal()
	return s.md, s.err
}

type harness struct {
	svc    *fakeService
	prompt *fakePrompter
	clip   *clipboard.Memory
	rec    *audit.Memory
	out    *bytes.Buffer
	wf     *Workflow
}

func newHarness(svc *fakeService) *harness {
	h := &harness{
		svc:    svc,
		prompt: &fakePrompter{},
		clip:   &clipboard.Memory{},
		rec:    &audit.Memory{},
		out:    &bytes.Buffer{},
	}
	h.wf = New(h.svc, h.prompt, h.clip, WithOutput(h.out), WithRecorder(h.rec))
	return h
}

func (h *harness) actions() []string {
	out := make([]string, 0, len(h.rec.Entries))
	for _, e := range h.rec.Entries {
		out = append(out, e.Action)
	}
	return out
}
