package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsinspect/fsinspect/internal/config"
	"github.com/fsinspect/fsinspect/internal/explorer"
	"github.com/fsinspect/fsinspect/internal/sysinfo"
)

// stubRunner satisfies both command runner interfaces without spawning
// external processes
type stubRunner struct {
	output string
	err    error
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return s.output, s.err
}

// createTestBrowser builds a browser over a temp directory tree:
// root/{alpha/,notes.txt}
func createTestBrowser(t *testing.T) (*BrowserModel, string) {
	t.Helper()

	root := t.TempDir()
	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0644))

	resolver, err := explorer.NewResolver(root)
	require.NoError(t, err)

	runner := &stubRunner{output: "text/plain"}
	lister := explorer.NewLister(resolver, "*")
	previewer := explorer.NewPreviewer(resolver, runner, 0)
	reporter := sysinfo.NewReporter(runner, nil, nil)

	cfg := &config.Config{
		Explorer: config.ExplorerConfig{RootPath: root, AppPath: root, Glob: "*"},
		UI:       config.UIConfig{ImagePreview: "off"},
	}

	model := NewBrowserModel(cfg, resolver, lister, previewer, reporter, root)
	return model, root
}

func loadEntries(t *testing.T, m *BrowserModel) {
	t.Helper()
	msg := m.loadEntries(m.currentDir)()
	loaded, ok := msg.(entriesLoadedMsg)
	require.True(t, ok)
	_, _ = m.handleEntriesLoaded(loaded)
}

func TestBrowser_InitialLoad(t *testing.T) {
	model, root := createTestBrowser(t)

	assert.True(t, model.loading)
	assert.Equal(t, root, model.CurrentDir())

	loadEntries(t, model)

	assert.False(t, model.loading)
	require.Len(t, model.entries, 2)
	// Directories sort before files
	assert.Equal(t, "alpha", model.entries[0].Name)
	assert.Equal(t, "notes.txt", model.entries[1].Name)
}

func TestBrowser_StaleEntriesIgnored(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	stale := entriesLoadedMsg{dir: "/somewhere/else", entries: nil}
	_, _ = model.handleEntriesLoaded(stale)

	// The stale result must not clobber the current listing
	assert.Len(t, model.entries, 2)
}

func TestBrowser_OpenDirectory(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)

	// Cursor starts on "alpha"
	keyMsg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := model.Update(keyMsg)

	assert.Equal(t, filepath.Join(root, "alpha"), model.CurrentDir())
	assert.True(t, model.loading)
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(entriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "alpha"), loaded.dir)
	assert.Empty(t, loaded.entries)
}

func TestBrowser_BackStopsAtRoot(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)

	keyMsg := tea.KeyMsg{Type: tea.KeyBackspace}
	_, _ = model.Update(keyMsg)

	// Still at the root, with a status message instead of an escape
	assert.Equal(t, root, model.CurrentDir())
	assert.True(t, model.status.HasMessage())
}

func TestBrowser_PathInputNavigates(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}})
	assert.True(t, model.showInput)
	assert.NotNil(t, cmd)

	model.pathInput.SetValue(filepath.Join(root, "alpha"))
	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, model.showInput)
	assert.Equal(t, filepath.Join(root, "alpha"), model.CurrentDir())
}

func TestBrowser_PathInputRejectsEscape(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}})
	model.pathInput.SetValue("/etc")
	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Navigation refused, current directory unchanged
	assert.Equal(t, root, model.CurrentDir())
	assert.True(t, model.status.HasMessage())
}

func TestBrowser_PreviewFileOpensModal(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	// Move cursor to notes.txt
	model.entryTable.SetCursor(1)
	model.cursor = 1

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(previewLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, explorer.PreviewText, loaded.result.Kind)
	assert.Equal(t, "hello", loaded.result.Content)

	_, _ = model.Update(loaded)
	require.NotNil(t, model.previewModal)

	_, closeCmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, closeCmd)
	_, _ = model.Update(closeCmd())
	assert.Nil(t, model.previewModal)
}

func TestBrowser_PreviewDirectoryShowsStatus(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	// Cursor on the "alpha" directory
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.Nil(t, cmd)
	assert.True(t, model.status.HasMessage())
}

func TestBrowser_EnvModalOpens(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.NotNil(t, model.envModal)
	require.NotNil(t, cmd)

	_, closeCmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, closeCmd)
	_, _ = model.Update(closeCmd())
	assert.Nil(t, model.envModal)
}

func TestBrowser_DirectoryChangedReloads(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)

	require.NoError(t, os.WriteFile(filepath.Join(root, "extra.txt"), []byte("x"), 0644))

	_, cmd := model.Update(directoryChangedMsg{})
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(entriesLoadedMsg)
	require.True(t, ok)
	_, _ = model.Update(loaded)

	assert.Len(t, model.entries, 3)
}

func TestBrowser_HelpToggle(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, model.showHelp)

	_, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, model.showHelp)
}

func TestBrowser_WindowResize(t *testing.T) {
	model, _ := createTestBrowser(t)
	loadEntries(t, model)

	_, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, model.windowWidth)
	assert.Equal(t, 40, model.windowHeight)
	assert.Equal(t, 30, model.viewportHeight)
}

func TestBrowser_ViewRenders(t *testing.T) {
	model, root := createTestBrowser(t)
	loadEntries(t, model)
	_, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := model.View()
	assert.Contains(t, view, filepath.Base(root))
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "notes.txt")
}

func TestEntryCategory(t *testing.T) {
	dir := explorer.Entry{Name: "d", Kind: explorer.KindDirectory}
	assert.Equal(t, "directory", entryCategory(dir))

	img := explorer.Entry{Name: "photo.png", Kind: explorer.KindFile}
	assert.Equal(t, "image", entryCategory(img))

	unknown := explorer.Entry{Name: "broken", Kind: explorer.KindUnknown}
	assert.Equal(t, "unknown", entryCategory(unknown))
}
