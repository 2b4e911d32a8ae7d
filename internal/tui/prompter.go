// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	// ErrCancelled is returned when the user leaves a prompt with Esc or Ctrl+C.
	ErrCancelled = errors.New("prompt cancelled")
	// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("interactive terminal required")
	// ErrNoOptions is returned by the selection prompts for an empty list.
	ErrNoOptions = errors.New("nothing to select")
)

// Prompter runs one bubbletea program per prompt.
type Prompter struct {
	in  io.Reader
	out io.Writer
	run func(tea.Model) (tea.Model, error)
}

// New returns a Prompter reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out}
	p.run = p.runProgram
	return p
}

// NewStd returns a Prompter bound to stdin and stderr, keeping stdout free
// for command output.
func NewStd() *Prompter {
	return New(os.Stdin, os.Stderr)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether the prompter's input is a terminal.
func (p *Prompter) Interactive() bool {
	f, ok := p.in.(*os.File)
	return ok && IsTerminal(f)
}

func (p *Prompter) runProgram(m tea.Model) (tea.Model, error) {
	if !p.Interactive() {
		return nil, ErrNotInteractive
	}
	return tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
}

// Select shows items and returns the chosen index.
func (p *Prompter) Select(title string, items []string) (int, error) {
	return p.selectIndex(title, items, false)
}

// FuzzySelect is Select with type-to-filter enabled.
func (p *Prompter) FuzzySelect(title string, items []string) (int, error) {
	return p.selectIndex(title, items, true)
}

func (p *Prompter) selectIndex(title string, items []string, filter bool) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoOptions
	}
	final, err := p.run(newSelectModel(title, items, filter))
	if err != nil {
		return -1, fmt.Errorf("selection prompt: %w", err)
	}
	m, ok := final.(selectModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return -1, ErrCancelled
	}
	return m.chosen, nil
}

// Confirm asks a yes/no question. The default answer is no.
func (p *Prompter) Confirm(question string) (bool, error) {
	final, err := p.run(newConfirmModel(question))
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	m, ok := final.(confirmModel)
	if !ok || m.cancelled {
		return false, ErrCancelled
	}
	return m.answer, nil
}

// Input reads one line of text.
func (p *Prompter) Input(label, initial string) (string, error) {
	return p.input(newInputModel(label, initial, false))
}

// Password reads one line of text with masked echo.
func (p *Prompter) Password(label string) (string, error) {
	return p.input(newInputModel(label, "", true))
}

func (p *Prompter) input(m inputModel) (string, error) {
	final, err := p.run(m)
	if err != nil {
		return "", fmt.Errorf("input prompt: %w", err)
	}
	res, ok := final.(inputModel)
	if !ok || res.cancelled {
		return "", ErrCancelled
	}
	return res.value, nil
}
