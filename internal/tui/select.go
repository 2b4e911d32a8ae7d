// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const maxListHeight = 20

// option is a list row remembering its position in the caller's slice, so
// the index survives filtering.
type option struct {
	label string
	index int
}

func (o option) Title() string       { return o.label }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return o.label }

type selectModel struct {
	list      list.Model
	chosen    int
	cancelled bool
	done      bool
}

func newSelectModel(title string, items []string, filter bool) selectModel {
	opts := make([]list.Item, len(items))
	for i, s := range items {
		opts[i] = option{label: s, index: i}
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(colorHighlight).
		BorderForeground(colorHighlight)

	height := len(items) + 8
	if height > maxListHeight {
		height = maxListHeight
	}
	l := list.New(opts, d, 60, height)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(filter)
	l.DisableQuitKeybindings()

	return selectModel{list: l, chosen: -1}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled, m.done = true, true
			return m, tea.Quit
		case "esc":
			// Esc first clears an active filter; only a plain list is left.
			if m.list.FilterState() == list.Unfiltered {
				m.cancelled, m.done = true, true
				return m, tea.Quit
			}
		case "enter":
			if m.list.FilterState() != list.Filtering {
				if it, ok := m.list.SelectedItem().(option); ok {
					m.chosen, m.done = it.index, true
					return m, tea.Quit
				}
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}
	return "\n" + m.list.View()
}
