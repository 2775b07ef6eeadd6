package inspector

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inspector/internal/core/styles"
)

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {
	parts := []string{m.headerView(), m.stack.View(), ""}
	if m.showHelp {
		parts = append(parts, m.helpPaneView(), "")
	}
	parts = append(parts, m.statusView(), m.help.ShortHelpView(m.shortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	title := styles.TextPrimaryBoldStyle.Render(m.entity.Name()) +
		styles.TextMutedStyle.Render(" · properties")
	return styles.InspectorHeaderStyle.Render(title)
}

// headerHeight is the number of lines above the first row.
func (m Model) headerHeight() int {
	return lipgloss.Height(m.headerView())
}

func (m Model) helpPaneView() string {
	idx := m.stack.FocusedIndex()
	if idx >= len(m.rows) {
		return ""
	}

	prop := m.rows[idx].prop
	width := max(m.controlWidth(), 20)

	body := styles.TextMutedStyle.Render("No help for " + prop.DisplayLabel())
	if prop.Help != "" {
		body = m.docs.Render(prop.Help, width)
	}
	return styles.HelpPaneStyle.Render(body)
}

func (m Model) statusView() string {
	status := fmt.Sprintf("reported: %d  unhandled interactions: %d", m.stats.reported, m.stats.unhandled)
	if m.stats.lastChange != "" {
		status += "  last: " + m.stats.lastChange
	}
	return styles.TextMutedStyle.Render(status)
}

func (m Model) shortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Next}
	if m.entity.CanUndo() {
		bindings = append(bindings, m.keys.Undo)
	}
	if m.entity.CanRedo() {
		bindings = append(bindings, m.keys.Redo)
	}
	return append(bindings, m.keys.Help, m.keys.Quit)
}
