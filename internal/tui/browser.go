package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/fsinspect/fsinspect/internal/config"
	"github.com/fsinspect/fsinspect/internal/explorer"
	"github.com/fsinspect/fsinspect/internal/sysinfo"
	uiconfig "github.com/fsinspect/fsinspect/internal/tui/config"
	img "github.com/fsinspect/fsinspect/internal/tui/image"
	"github.com/fsinspect/fsinspect/internal/tui/messaging"
	"github.com/fsinspect/fsinspect/internal/tui/theme"
	"github.com/fsinspect/fsinspect/internal/utils"
)

// KeyMap defines keybindings for the browser
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Back     key.Binding
	Home     key.Binding
	Root     key.Binding
	GotoPath key.Binding
	Refresh  key.Binding
	Preview  key.Binding
	CopyPath key.Binding
	Env      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to start"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to end"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter/l", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "h", "left"),
			key.WithHelp("bksp/h", "go up"),
		),
		Home: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "app home"),
		),
		Root: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "go to root"),
		),
		GotoPath: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to path"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/f5", "refresh"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		Env: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "environment"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Preview, k.Env, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Back, k.Home, k.Root},
		{k.GotoPath, k.Refresh, k.Preview, k.CopyPath},
		{k.Env, k.Help, k.Quit},
	}
}

// BrowserModel is the interactive filesystem browser
type BrowserModel struct {
	cfg       *config.Config
	resolver  *explorer.Resolver
	lister    *explorer.Lister
	previewer *explorer.Previewer
	reporter  *sysinfo.Reporter
	userData  *config.UserData

	currentDir string
	entries    []explorer.Entry
	cursor     int
	loading    bool
	err        error

	entryTable   table.Model
	keyMap       KeyMap
	help         help.Model
	spinner      spinner.Model
	status       messaging.StatusManager
	showHelp     bool
	helpViewport viewport.Model

	showInput bool
	pathInput textinput.Model

	previewModal *PreviewModel
	imageModal   *ImageModel
	envModal     *EnvModel

	watcher *DirWatcher
	program *tea.Program

	windowWidth    int
	windowHeight   int
	viewportHeight int
}

// NewBrowserModel creates a browser rooted at the configured boundary.
// startDir must already be inside the boundary; pass the root when in doubt.
func NewBrowserModel(cfg *config.Config, resolver *explorer.Resolver, lister *explorer.Lister,
	previewer *explorer.Previewer, reporter *sysinfo.Reporter, startDir string) *BrowserModel {

	columns := []table.Column{
		{Title: "NAME", Width: uiconfig.DefaultColumnNameWidth},
		{Title: "SIZE", Width: uiconfig.DefaultColumnSizeWidth},
		{Title: "KIND", Width: uiconfig.DefaultColumnKindWidth},
		{Title: "MODIFIED", Width: uiconfig.DefaultColumnModifiedWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(uiconfig.DefaultTableHeight),
		table.WithFocused(true),
		table.WithStyles(table.Styles{
			Header: lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(theme.ColorBrightCyan)).
				BorderBottom(true).
				Bold(true).
				Foreground(lipgloss.Color(theme.ColorBrightCyan)),
			Selected: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#4A90E2")).
				Bold(true),
			Cell: lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ColorWhite)),
		}),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBrightYellow))

	h := help.New()
	h.ShowAll = false

	input := textinput.New()
	input.Placeholder = "enter path"
	input.CharLimit = 512

	vp := viewport.New(60, 15)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBrightYellow)).
		Padding(1, 2)

	userData, _ := config.LoadUserData()

	return &BrowserModel{
		cfg:            cfg,
		resolver:       resolver,
		lister:         lister,
		previewer:      previewer,
		reporter:       reporter,
		userData:       userData,
		currentDir:     startDir,
		loading:        true,
		windowWidth:    80,
		windowHeight:   24,
		viewportHeight: uiconfig.DefaultTableHeight,
		entryTable:     t,
		keyMap:         DefaultKeyMap(),
		help:           h,
		spinner:        s,
		status:         messaging.NewStatusManager(),
		pathInput:      input,
		helpViewport:   vp,
	}
}

// SetProgram sets the tea.Program reference for direct message sending
func (m *BrowserModel) SetProgram(p *tea.Program) {
	m.program = p
	if m.watcher != nil {
		m.watcher.SetProgram(p)
	}
}

// SetWatcher attaches a directory watcher for live refresh
func (m *BrowserModel) SetWatcher(w *DirWatcher) {
	m.watcher = w
}

// Init implements the bubbletea.Model interface
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.loadEntries(m.currentDir), m.spinner.Tick)
}

// Message types for tea.Cmd communication
type entriesLoadedMsg struct {
	dir     string
	entries []explorer.Entry
	err     error
}

type previewLoadedMsg struct {
	entry  explorer.Entry
	result explorer.Result
}

// directoryChangedMsg is sent by the watcher when the current directory
// changes on disk
type directoryChangedMsg struct{}

// Update implements the bubbletea.Model interface
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case entriesLoadedMsg:
		return m.handleEntriesLoaded(msg)

	case previewLoadedMsg:
		m.previewModal = NewPreviewModel(msg.entry, msg.result, m.windowWidth, m.windowHeight)
		return m, m.previewModal.Init()

	case directoryChangedMsg:
		logrus.Debugf("Directory %s changed on disk, reloading", m.currentDir)
		return m, m.loadEntries(m.currentDir)

	case modalClosedMsg:
		m.previewModal = nil
		m.imageModal = nil
		m.envModal = nil
		return m, nil

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.viewportHeight = msg.Height - 10 // Reserve space for header/footer

		leftPanelWidth := int(float64(msg.Width)*uiconfig.LeftPanelWidthRatio) - 2
		m.updateTableSize(leftPanelWidth, m.viewportHeight)

		m.helpViewport.Width = min(60, msg.Width-10)
		m.helpViewport.Height = min(15, msg.Height-10)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case envSectionLoadedMsg:
		if m.envModal != nil {
			em, cmd := m.envModal.Update(msg)
			m.envModal = em
			return m, cmd
		}
		return m, nil

	case imageRenderedMsg:
		if m.imageModal != nil {
			im, cmd := m.imageModal.Update(msg)
			m.imageModal = im
			return m, cmd
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleKey routes key presses to the active modal, the path input or the
// main navigation handler
func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.previewModal != nil:
		pm, cmd := m.previewModal.Update(msg)
		m.previewModal = pm
		return m, cmd

	case m.imageModal != nil:
		im, cmd := m.imageModal.Update(msg)
		m.imageModal = im
		return m, cmd

	case m.envModal != nil:
		em, cmd := m.envModal.Update(msg)
		m.envModal = em
		return m, cmd

	case m.showInput:
		return m.handlePathInput(msg)

	case m.showHelp:
		if key.Matches(msg, m.keyMap.Help) || key.Matches(msg, m.keyMap.Quit) {
			m.showHelp = false
			m.help.ShowAll = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpViewport, cmd = m.helpViewport.Update(msg)
		return m, cmd
	}

	return m.handleNavigation(msg)
}

// handleNavigation handles keyboard navigation in the main view
func (m *BrowserModel) handleNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		if m.userData != nil {
			if err := m.userData.SetLastDirectory(m.currentDir); err != nil {
				logrus.Debugf("Failed to persist last directory: %v", err)
			}
		}
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown),
		key.Matches(msg, m.keyMap.Top),
		key.Matches(msg, m.keyMap.Bottom):
		var cmd tea.Cmd
		m.entryTable, cmd = m.entryTable.Update(msg)
		m.cursor = m.entryTable.Cursor()
		m.status.ClearMessage()
		return m, cmd

	case key.Matches(msg, m.keyMap.Open):
		return m.openSelected()

	case key.Matches(msg, m.keyMap.Back):
		parent := m.resolver.Parent(m.currentDir)
		if parent == m.currentDir {
			m.status.SetMessage("Already at the root boundary", messaging.MessageInfo)
			return m, nil
		}
		return m.changeDirectory(parent)

	case key.Matches(msg, m.keyMap.Home):
		return m.changeDirectory(m.cfg.Explorer.AppPath)

	case key.Matches(msg, m.keyMap.Root):
		return m.changeDirectory(m.resolver.Root())

	case key.Matches(msg, m.keyMap.GotoPath):
		m.showInput = true
		m.pathInput.SetValue(m.currentDir)
		m.pathInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.Refresh):
		m.loading = true
		m.err = nil
		m.status.ClearMessage()
		return m, m.loadEntries(m.currentDir)

	case key.Matches(msg, m.keyMap.Preview):
		return m.previewSelected()

	case key.Matches(msg, m.keyMap.CopyPath):
		if entry, ok := m.selectedEntry(); ok {
			if err := utils.CopyToClipboard(entry.Path); err != nil {
				m.status.SetMessage(fmt.Sprintf("Copy failed: %v", err), messaging.MessageError)
			} else {
				m.status.SetMessage("Path copied to clipboard", messaging.MessageSuccess)
			}
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Env):
		m.envModal = NewEnvModel(m.reporter, m.windowWidth, m.windowHeight)
		return m, m.envModal.Init()

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = true
		m.showHelp = true
		m.helpViewport.SetContent(m.help.View(m.keyMap))
	}

	return m, nil
}

// handlePathInput handles the go-to-path text input
func (m *BrowserModel) handlePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		requested := strings.TrimSpace(m.pathInput.Value())
		m.showInput = false
		m.pathInput.Blur()
		if requested == "" {
			return m, nil
		}
		return m.changeDirectory(requested)

	case tea.KeyEsc:
		m.showInput = false
		m.pathInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// openSelected enters the selected directory or previews the selected file
func (m *BrowserModel) openSelected() (tea.Model, tea.Cmd) {
	entry, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}

	switch entry.Kind {
	case explorer.KindDirectory:
		return m.changeDirectory(entry.Path)
	case explorer.KindFile:
		return m.previewSelected()
	default:
		m.status.SetMessage("Entry metadata unavailable", messaging.MessageWarning)
		return m, nil
	}
}

// previewSelected opens the right modal for the selected file
func (m *BrowserModel) previewSelected() (tea.Model, tea.Cmd) {
	entry, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}
	if entry.IsDir() {
		m.status.SetMessage("Select a file to preview", messaging.MessageInfo)
		return m, nil
	}

	contentType := utils.ContentTypeByName(entry.Path)
	if utils.IsImageType(contentType) && m.cfg.UI.ImagePreview != "off" {
		renderer := img.NewRenderer()
		if renderer.IsSupported() {
			m.imageModal = NewImageModel(renderer, entry, m.windowWidth, m.windowHeight)
			return m, m.imageModal.Init()
		}
		// No graphics protocol, fall through to the text pipeline which
		// will show the binary placeholder.
	}

	return m, m.loadPreview(entry)
}

// changeDirectory validates the target and reloads the listing
func (m *BrowserModel) changeDirectory(requested string) (tea.Model, tea.Cmd) {
	resolved, err := m.resolver.ResolveDir(requested)
	if err != nil {
		m.status.SetMessage(displayError(err), messaging.MessageError)
		return m, nil
	}

	m.currentDir = resolved
	m.loading = true
	m.err = nil
	m.status.ClearMessage()
	return m, m.loadEntries(resolved)
}

// handleEntriesLoaded applies a finished listing to the model
func (m *BrowserModel) handleEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.dir != m.currentDir {
		// Stale result from a directory we already left
		return m, nil
	}

	m.loading = false
	m.entries = msg.entries
	m.err = msg.err
	if m.err == nil {
		m.updateTable()
		m.entryTable.SetCursor(0)
		m.cursor = 0
		if m.watcher != nil {
			if err := m.watcher.Watch(m.currentDir); err != nil {
				logrus.Debugf("Failed to watch %s: %v", m.currentDir, err)
			}
		}
	}
	return m, nil
}

// loadEntries lists the directory in a tea.Cmd
func (m *BrowserModel) loadEntries(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.lister.List(dir)
		return entriesLoadedMsg{dir: dir, entries: entries, err: err}
	}
}

// loadPreview reads the file preview in a tea.Cmd
func (m *BrowserModel) loadPreview(entry explorer.Entry) tea.Cmd {
	return func() tea.Msg {
		result := m.previewer.Preview(context.Background(), entry.Path)
		return previewLoadedMsg{entry: entry, result: result}
	}
}

// selectedEntry returns the entry under the cursor
func (m *BrowserModel) selectedEntry() (explorer.Entry, bool) {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return explorer.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// CurrentDir returns the directory currently displayed
func (m *BrowserModel) CurrentDir() string {
	return m.currentDir
}

// displayError converts navigation errors into short user-facing text
func displayError(err error) string {
	switch {
	case err == nil:
		return ""
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// updateTable updates table data from the entries slice
func (m *BrowserModel) updateTable() {
	rows := make([]table.Row, len(m.entries))
	for i, entry := range m.entries {
		name := entry.Name
		if len(name) > uiconfig.EntryNameTruncateLength {
			name = name[:uiconfig.EntryNameTruncateLength] + "..."
		}

		category := entryCategory(entry)
		icon := categoryIcon(category)
		styled := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.GetEntryColor(category))).
			Render(name)

		kind := strings.ToUpper(entry.Kind.String())
		if len(kind) > uiconfig.KindTruncateLength {
			kind = kind[:uiconfig.KindTruncateLength]
		}

		rows[i] = table.Row{
			fmt.Sprintf("%s %s", icon, styled),
			entry.DisplaySize(),
			kind,
			entry.DisplayModTime(),
		}
	}
	m.entryTable.SetRows(rows)
}

// updateTableSize updates table dimensions and column widths
func (m *BrowserModel) updateTableSize(width, height int) {
	totalWidth := width - 8 // Reserve space for borders and padding

	sizeWidth := uiconfig.DefaultColumnSizeWidth
	kindWidth := uiconfig.DefaultColumnKindWidth
	modifiedWidth := uiconfig.DefaultColumnModifiedWidth

	nameWidth := totalWidth - sizeWidth - kindWidth - modifiedWidth
	if nameWidth < 25 {
		nameWidth = 25
	} else if nameWidth > 60 {
		nameWidth = 60
	}

	columns := []table.Column{
		{Title: "NAME", Width: nameWidth},
		{Title: "SIZE", Width: sizeWidth},
		{Title: "KIND", Width: kindWidth},
		{Title: "MODIFIED", Width: modifiedWidth},
	}

	m.entryTable.SetColumns(columns)
	m.entryTable.SetHeight(height)
}

// entryCategory maps an entry to a display category
func entryCategory(entry explorer.Entry) string {
	switch entry.Kind {
	case explorer.KindDirectory:
		return "directory"
	case explorer.KindUnknown:
		return "unknown"
	default:
		return utils.GetFileCategory(utils.ContentTypeByName(entry.Name))
	}
}

// categoryIcon returns the icon for a display category
func categoryIcon(category string) string {
	switch category {
	case "directory":
		return "📁"
	case "image":
		return "🖼️"
	case "document":
		return "📝"
	case "archive":
		return "📦"
	case "video":
		return "🎬"
	case "audio":
		return "🎵"
	case "text":
		return "📄"
	case "unknown":
		return "❓"
	default:
		return "📄"
	}
}

// formatSize is a small helper kept for the detail panel
func formatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
