package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderLatest(),
		"",
		m.renderHistory(),
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderHeader() string {
	postfix := "off"
	if m.postfix {
		postfix = "on"
	}
	subtitle := fmt.Sprintf("mode: %s  postfix: %s  generated: %d", m.mode, postfix, len(m.ranks))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("🎖️ "+m.title),
		m.theme.Subtitle.Render(subtitle),
	)
}

func (m Model) renderLatest() string {
	if len(m.ranks) == 0 {
		return m.theme.RoundedBox.Render(
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press Enter to generate a rank."),
		)
	}

	latest := m.ranks[len(m.ranks)-1]
	return m.theme.RoundedBox.Render(
		m.theme.ForTier(latest.Tier()).Inherit(m.theme.Latest).Render(latest.String()),
	)
}

func (m Model) renderHistory() string {
	if len(m.ranks) == 0 {
		return ""
	}
	return m.table.View()
}

func (m Model) renderStatusBar() string {
	switch {
	case m.lastError != nil:
		return m.theme.StatusError.Render("✗ " + m.lastError.Error())
	case m.exhausted && m.mode == ModeNext:
		return m.theme.StatusWarning.Render("⚠️ Every rank has been generated. Switch to random mode or quit.")
	default:
		return ""
	}
}
