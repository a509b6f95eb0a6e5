package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsinspect/fsinspect/internal/sysinfo"
	"github.com/fsinspect/fsinspect/internal/tui/theme"
)

// Environment report sections
const (
	envSectionPackages = iota
	envSectionDisk
	envSectionVars
	envSectionCount
)

var envSectionTitles = [envSectionCount]string{"Packages", "Disk Usage", "Env Vars"}

// envSectionLoadedMsg carries one finished report section
type envSectionLoadedMsg struct {
	section int
	content string
}

// EnvModel is a fullscreen modal showing the environment report in tabs
type EnvModel struct {
	width  int
	height int

	reporter *sysinfo.Reporter
	active   int
	sections [envSectionCount]string
	loaded   [envSectionCount]bool

	content viewport.Model
	spin    spinner.Model
}

func NewEnvModel(reporter *sysinfo.Reporter, width, height int) *EnvModel {
	vp := viewport.New(max(20, width-6), max(5, height-9))
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBrightGreen)).
		Padding(0, 1)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBrightYellow))

	return &EnvModel{
		width:    width,
		height:   height,
		reporter: reporter,
		content:  vp,
		spin:     s,
	}
}

func (m *EnvModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadSection(envSectionPackages),
		m.loadSection(envSectionDisk),
		m.loadSection(envSectionVars),
		m.spin.Tick,
	)
}

// loadSection runs one report section in a tea.Cmd so slow tools never
// block the event loop
func (m *EnvModel) loadSection(section int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var content string
		switch section {
		case envSectionPackages:
			content = m.reporter.Packages(ctx)
		case envSectionDisk:
			content = m.reporter.DiskUsage(ctx)
		default:
			content = m.reporter.EnvVars()
		}
		return envSectionLoadedMsg{section: section, content: content}
	}
}

func (m *EnvModel) Update(msg tea.Msg) (*EnvModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "e":
			return m, func() tea.Msg { return modalClosedMsg{} }
		case "tab", "right", "l":
			m.active = (m.active + 1) % envSectionCount
			m.refreshContent()
			return m, nil
		case "shift+tab", "left", "h":
			m.active = (m.active + envSectionCount - 1) % envSectionCount
			m.refreshContent()
			return m, nil
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd

	case envSectionLoadedMsg:
		m.sections[msg.section] = msg.content
		m.loaded[msg.section] = true
		if msg.section == m.active {
			m.refreshContent()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loaded[m.active] {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = max(20, msg.Width-6)
		m.content.Height = max(5, msg.Height-9)
		return m, nil
	}
	return m, nil
}

// refreshContent swaps the viewport to the active section
func (m *EnvModel) refreshContent() {
	m.content.SetContent(m.sections[m.active])
	m.content.GotoTop()
}

func (m *EnvModel) View() string {
	title := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorBrightGreen)).
		Render("🌍 Environment Report")

	tabs := make([]string, envSectionCount)
	for i, name := range envSectionTitles {
		tabs[i] = theme.CreateTabStyle(i == m.active).Render(name)
	}
	tabLine := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	body := m.content.View()
	if !m.loaded[m.active] {
		loadingStyle := lipgloss.NewStyle().
			Width(m.content.Width).
			Height(m.content.Height).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center)
		body = loadingStyle.Render(m.spin.View() + " Collecting...")
	}

	hint := theme.CreateHintStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("tab/←→ to switch section • ↑↓ to scroll • q/esc/e to close")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(tabLine)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(hint)
	return b.String()
}
