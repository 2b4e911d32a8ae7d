// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/developerdao/ddcloud/internal/i18n"
)

type confirmModel struct {
	question  string
	onYes     bool
	answer    bool
	cancelled bool
	done      bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "ctrl+c", "esc":
		m.cancelled, m.done = true, true
		return m, tea.Quit
	case "y", "Y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n", "N":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.onYes = !m.onYes
	case "enter":
		m.answer, m.done = m.onYes, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes, no := buttonStyle, activeButtonStyle
	if m.onYes {
		yes, no = activeButtonStyle, buttonStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		yes.Render(i18n.T("confirm.yes")),
		"  ",
		no.Render(i18n.T("confirm.no")),
	)
	body := lipgloss.JoinVertical(lipgloss.Center, specialStyle.Render(m.question), buttons)
	return dialogBoxStyle.Render(body) + "\n"
}
