package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsinspect/fsinspect/internal/explorer"
	"github.com/fsinspect/fsinspect/internal/tui/theme"
)

// PreviewModel is a fullscreen modal showing a text preview of a file
type PreviewModel struct {
	width  int
	height int
	entry  explorer.Entry
	result explorer.Result

	content viewport.Model
}

// modalClosedMsg is sent to the parent model when a modal is closed
type modalClosedMsg struct{}

func NewPreviewModel(entry explorer.Entry, result explorer.Result, width, height int) *PreviewModel {
	vp := viewport.New(max(20, width-6), max(5, height-8))
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBrightCyan)).
		Padding(0, 1)

	m := &PreviewModel{
		width:   width,
		height:  height,
		entry:   entry,
		result:  result,
		content: vp,
	}
	m.content.SetContent(m.body())
	return m
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

func (m *PreviewModel) Update(msg tea.Msg) (*PreviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "p":
			return m, func() tea.Msg { return modalClosedMsg{} }
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = max(20, msg.Width-6)
		m.content.Height = max(5, msg.Height-8)
		return m, nil
	}
	return m, nil
}

func (m *PreviewModel) View() string {
	nameLine := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorBrightCyan)).
		Render("📄 " + m.entry.Name)

	statusLine := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(m.statusText())

	hint := theme.CreateHintStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("q/esc/p to close • ↑↓/pgup/pgdn to scroll")

	var b strings.Builder
	b.WriteString(nameLine)
	b.WriteString("\n")
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	b.WriteString(hint)
	return b.String()
}

// statusText summarizes the MIME type and any warnings for the header line
func (m *PreviewModel) statusText() string {
	parts := []string{}
	if m.result.MIME != "" {
		parts = append(parts, m.result.MIME)
	}
	if m.entry.Size > 0 {
		parts = append(parts, formatSize(m.entry.Size))
	}
	if m.result.Truncated {
		parts = append(parts, theme.CreateSecondaryTextStyle().Render("preview truncated"))
	}
	if m.result.Warning != "" {
		parts = append(parts, theme.CreateSecondaryTextStyle().Render(m.result.Warning))
	}
	return strings.Join(parts, "  •  ")
}

// body returns the viewport content for the preview result
func (m *PreviewModel) body() string {
	switch m.result.Kind {
	case explorer.PreviewText:
		if m.result.Content == "" {
			return theme.CreateSecondaryTextStyle().Render("(empty file)")
		}
		return m.result.Content
	case explorer.PreviewBinary:
		return theme.CreateSecondaryTextStyle().Render(m.result.Content)
	default:
		return theme.CreateErrorStyle().Render(m.result.Content)
	}
}
