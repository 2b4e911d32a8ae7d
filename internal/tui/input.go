// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/developerdao/ddcloud/internal/i18n"
)

type inputModel struct {
	input     textinput.Model
	value     string
	cancelled bool
	done      bool
}

func newInputModel(label, initial string, masked bool) inputModel {
	ti := textinput.New()
	ti.Prompt = label + " "
	ti.PromptStyle = titleStyle
	ti.CharLimit = 256
	ti.SetValue(initial)
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return inputModel{input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "esc":
			m.cancelled, m.done = true, true
			return m, tea.Quit
		case "enter":
			m.value, m.done = m.input.Value(), true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View() + "\n" + helpStyle.Render(i18n.T("prompt.input_help")) + "\n"
}
