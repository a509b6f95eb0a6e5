package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsinspect/fsinspect/internal/explorer"
	img "github.com/fsinspect/fsinspect/internal/tui/image"
	"github.com/fsinspect/fsinspect/internal/tui/theme"
)

// ImageModel is a fullscreen modal showing an inline image preview through
// the terminal graphics protocol
type ImageModel struct {
	width    int
	height   int
	entry    explorer.Entry
	renderer *img.Renderer

	loading  bool
	rendered string
	err      error

	imgCols int
	imgRows int

	spin spinner.Model
}

// imageRenderedMsg carries the finished render back to the event loop
type imageRenderedMsg struct {
	rendered string
	cols     int
	rows     int
	err      error
}

func NewImageModel(renderer *img.Renderer, entry explorer.Entry, width, height int) *ImageModel {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBrightYellow))

	return &ImageModel{
		width:    width,
		height:   height,
		entry:    entry,
		renderer: renderer,
		loading:  true,
		spin:     s,
	}
}

func (m *ImageModel) Init() tea.Cmd {
	// Reserve 3 lines on top (name, status, hint) and 1 bottom margin
	usableCols := max(1, m.width-4)
	usableRows := max(1, m.height-4)
	m.renderer.SetMaxSize(usableCols, usableRows)

	load := func() tea.Msg {
		rendered, err := m.renderer.Render(m.entry.Path)
		if err != nil {
			return imageRenderedMsg{err: err}
		}
		cols, rows, err := m.renderer.Size(m.entry.Path)
		if err != nil {
			cols, rows = usableCols, usableRows
		}
		return imageRenderedMsg{rendered: rendered, cols: cols, rows: rows}
	}

	return tea.Batch(load, m.spin.Tick)
}

func (m *ImageModel) Update(msg tea.Msg) (*ImageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "p":
			return m, func() tea.Msg { return modalClosedMsg{} }
		}

	case imageRenderedMsg:
		m.loading = false
		m.rendered = msg.rendered
		m.imgCols = msg.cols
		m.imgRows = msg.rows
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *ImageModel) View() string {
	nameLine := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorBrightCyan)).
		Render("🖼 " + m.entry.Name)

	var statusText string
	switch {
	case m.loading:
		statusText = fmt.Sprintf("%s Rendering image…", m.spin.View())
	case m.err != nil:
		statusText = theme.CreateErrorStyle().Render(fmt.Sprintf("Failed to render: %v", m.err))
	case m.entry.Size > 0:
		statusText = fmt.Sprintf("%s  •  %s", formatSize(m.entry.Size), m.renderer.Protocol)
	}
	statusLine := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(statusText)

	hint := theme.CreateHintStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("q/esc/p to close")

	var b strings.Builder
	b.WriteString(nameLine)
	b.WriteString("\n")
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(hint)
	b.WriteString("\n")

	if !m.loading && m.err == nil && m.rendered != "" {
		// Center the image block by cells and write it at an absolute
		// position below the header lines
		cols := m.imgCols
		if cols < 1 {
			cols = 1
		}
		if cols > m.width {
			cols = m.width
		}
		gap := m.width - cols
		if gap < 0 {
			gap = 0
		}
		col := 1 + gap/2
		row := 5 // name, status, hint lines plus margin
		b.WriteString(fmt.Sprintf("\x1b[%d;%dH%s\x1b[0m", row, col, m.rendered))
	}
	return b.String()
}
