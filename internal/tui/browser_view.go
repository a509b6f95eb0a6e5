package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fsinspect/fsinspect/internal/explorer"
	uiconfig "github.com/fsinspect/fsinspect/internal/tui/config"
	"github.com/fsinspect/fsinspect/internal/tui/theme"
	"github.com/fsinspect/fsinspect/internal/utils"
)

// View implements the bubbletea.Model interface
func (m *BrowserModel) View() string {
	// Modals take over the whole screen
	if m.previewModal != nil {
		return m.previewModal.View()
	}
	if m.imageModal != nil {
		return m.imageModal.View()
	}
	if m.envModal != nil {
		return m.envModal.View()
	}

	leftPanelWidth := int(float64(m.windowWidth) * uiconfig.LeftPanelWidthRatio)
	rightPanelWidth := m.windowWidth - leftPanelWidth - 2

	headerLine := theme.CreateHeaderStyle().Render(fmt.Sprintf("fsinspect - %s", m.currentDir))

	// Show loading state with spinner
	if m.loading {
		return headerLine + "\n" + theme.CreateLoadingStyle().Render(fmt.Sprintf("%s Loading directory...", m.spinner.View()))
	}

	// Show error if any
	if m.err != nil {
		return headerLine + "\n" + theme.CreateErrorStyle().Render(displayError(m.err))
	}

	leftPanel := m.renderLeftPanel(leftPanelWidth)
	rightPanel := m.renderRightPanel(rightPanelWidth)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		lipgloss.NewStyle().Width(2).Render("  "), // Separator
		rightPanel,
	)

	footerLine := m.renderFooter()

	baseView := headerLine + "\n" + content + "\n" + footerLine

	if m.showInput {
		return m.renderFloatingDialog(baseView, m.renderPathInputDialog())
	}

	if m.showHelp {
		return m.renderFloatingDialog(baseView, m.renderHelpDialog())
	}

	return baseView
}

// renderLeftPanel renders the entry table
func (m *BrowserModel) renderLeftPanel(width int) string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ColorBrightBlack)).
			Width(width).
			Height(m.viewportHeight).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center)
		return emptyStyle.Render("Empty directory")
	}

	m.updateTableSize(width, m.viewportHeight)
	tableView := m.entryTable.View()

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorBrightBlack)).
		MarginTop(1)
	tableView += "\n" + countStyle.Render(fmt.Sprintf("Total: %d entries", len(m.entries)))

	return tableView
}

// renderRightPanel renders details for the selected entry
func (m *BrowserModel) renderRightPanel(width int) string {
	var b strings.Builder

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), false, false, false, true)

	b.WriteString(theme.CreateSectionHeaderStyle().Render("Entry Details"))
	b.WriteString("\n")

	entry, ok := m.selectedEntry()
	if !ok {
		b.WriteString(theme.CreateSecondaryTextStyle().Render("Select an entry to view details"))
		b.WriteString("\n")
		return panelStyle.Render(b.String())
	}

	info := theme.CreateInfoTextStyle()
	category := entryCategory(entry)

	b.WriteString(info.Render(fmt.Sprintf("%s Name: %s", categoryIcon(category), entry.Name)))
	b.WriteString("\n")
	b.WriteString(info.Render(fmt.Sprintf("📌 Kind: %s", entry.Kind)))
	b.WriteString("\n")
	if !entry.IsDir() && entry.Kind != explorer.KindUnknown {
		b.WriteString(info.Render(fmt.Sprintf("📊 Size: %s", formatSize(entry.Size))))
		b.WriteString("\n")
		b.WriteString(info.Render(fmt.Sprintf("🏷️ Type: %s", utils.ContentTypeByName(entry.Name))))
		b.WriteString("\n")
	}
	if entry.Permissions != "" {
		b.WriteString(info.Render(fmt.Sprintf("🔒 Permissions: %s", entry.Permissions)))
		b.WriteString("\n")
	}
	b.WriteString(info.Render(fmt.Sprintf("🕒 Modified: %s", entry.DisplayModTime())))
	b.WriteString("\n\n")

	pathStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorBrightBlue)).
		Width(width - 4)
	b.WriteString(theme.CreateSectionHeaderStyle().Render("Path"))
	b.WriteString("\n")
	b.WriteString(pathStyle.Render(entry.Path))
	b.WriteString("\n\n")

	b.WriteString(theme.CreateHintStyle().Render("💡 enter to open • p to preview • y to copy path"))
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}

// renderFooter renders the status message or the short help line
func (m *BrowserModel) renderFooter() string {
	if m.status.HasMessage() {
		return theme.CreateFooterStyle().Render(m.status.RenderMessage())
	}
	return theme.CreateFooterStyle().Render(m.help.ShortHelpView(m.keyMap.ShortHelp()))
}

// renderFloatingDialog centers a dialog over the base view
func (m *BrowserModel) renderFloatingDialog(baseView, dialog string) string {
	_ = baseView // lipgloss.Place cannot layer, the dialog replaces the view

	return lipgloss.Place(
		m.windowWidth,
		m.windowHeight,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#222222")),
	)
}

// renderPathInputDialog renders the go-to-path dialog
func (m *BrowserModel) renderPathInputDialog() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorBrightCyan)).
		Align(lipgloss.Center).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("Go to path"))
	b.WriteString("\n\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(theme.CreateHintStyle().Render("enter to go • esc to cancel"))

	return theme.CreateDialogStyle(uiconfig.DialogLargeWidth, theme.ColorBrightCyan).Render(b.String())
}

// renderHelpDialog renders the help dialog using bubbles components
func (m *BrowserModel) renderHelpDialog() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorBrightYellow)).
		Align(lipgloss.Center).
		MarginBottom(1)

	title := titleStyle.Render("fsinspect - Help")
	helpContent := m.help.FullHelpView(m.keyMap.FullHelp())

	m.helpViewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, title, helpContent))

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBrightYellow)).
		Padding(1).
		Width(min(uiconfig.DialogLargeWidth, m.windowWidth-10)).
		Foreground(lipgloss.Color(theme.ColorWhite))

	instructions := theme.CreateHintStyle().
		Align(lipgloss.Center).
		MarginTop(1).
		Render("Press ? to close help • Use ↑↓ to scroll")

	return dialogStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.helpViewport.View(),
		instructions,
	))
}
