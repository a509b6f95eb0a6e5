package explorer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsinspect/fsinspect/internal/sysinfo"
)

// fakeProbe returns a canned MIME type for every probed file
type fakeProbe struct {
	mime string
	err  error
	runs int
}

func (f *fakeProbe) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.runs++
	if f.err != nil {
		return "", f.err
	}
	return f.mime + "\n", nil
}

func writePreviewFile(t *testing.T, root, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestPreview_TextFile(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "readme.md", []byte("# hello\n"))

	p := NewPreviewer(r, &fakeProbe{mime: "text/markdown"}, 0)
	res := p.Preview(context.Background(), "readme.md")

	assert.Equal(t, PreviewText, res.Kind)
	assert.Equal(t, "text/markdown", res.MIME)
	assert.Equal(t, "# hello\n", res.Content)
	assert.False(t, res.Truncated)
	assert.Empty(t, res.Warning)
}

func TestPreview_JSONCountsAsText(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "cfg.json", []byte(`{"a":1}`))

	p := NewPreviewer(r, &fakeProbe{mime: "application/json"}, 0)
	res := p.Preview(context.Background(), "cfg.json")

	assert.Equal(t, PreviewText, res.Kind)
	assert.Equal(t, `{"a":1}`, res.Content)
}

func TestPreview_BinaryNeverDecoded(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "blob", []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01})

	p := NewPreviewer(r, &fakeProbe{mime: "application/x-executable"}, 0)
	res := p.Preview(context.Background(), "blob")

	assert.Equal(t, PreviewBinary, res.Kind)
	assert.NotContains(t, res.Content, "ELF")
	assert.Contains(t, res.Content, "application/x-executable")
}

func TestPreview_TruncatedToExactCap(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "big.txt", []byte(strings.Repeat("a", 100)))

	p := NewPreviewer(r, &fakeProbe{mime: "text/plain"}, 64)
	res := p.Preview(context.Background(), "big.txt")

	assert.Equal(t, PreviewText, res.Kind)
	assert.Len(t, res.Content, 64)
	assert.True(t, res.Truncated)
}

func TestPreview_FileAtCapNotTruncated(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "exact.txt", []byte(strings.Repeat("b", 64)))

	p := NewPreviewer(r, &fakeProbe{mime: "text/plain"}, 64)
	res := p.Preview(context.Background(), "exact.txt")

	assert.Len(t, res.Content, 64)
	assert.False(t, res.Truncated)
}

func TestPreview_ProbeMissingFallsBackToSniffing(t *testing.T) {
	r, root := newTestResolver(t)
	writePreviewFile(t, root, "notes.txt", []byte("plain text content\n"))

	probe := &fakeProbe{err: fmt.Errorf("file: %w", sysinfo.ErrToolMissing)}
	p := NewPreviewer(r, probe, 0)
	res := p.Preview(context.Background(), "notes.txt")

	assert.Equal(t, PreviewText, res.Kind)
	assert.NotEmpty(t, res.Warning)
	assert.Contains(t, res.Content, "plain text")
}

func TestPreview_ProbeMissingStillBlocksBinary(t *testing.T) {
	r, root := newTestResolver(t)
	// PNG magic bytes, recognized by the content sniffer
	writePreviewFile(t, root, "pic.png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})

	probe := &fakeProbe{err: fmt.Errorf("file: %w", sysinfo.ErrToolMissing)}
	p := NewPreviewer(r, probe, 0)
	res := p.Preview(context.Background(), "pic.png")

	assert.Equal(t, PreviewBinary, res.Kind)
	assert.NotEmpty(t, res.Warning)
}

func TestPreview_DirectoryIsAnError(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))

	p := NewPreviewer(r, &fakeProbe{mime: "inode/directory"}, 0)
	res := p.Preview(context.Background(), "sub")

	assert.Equal(t, PreviewError, res.Kind)
	assert.Contains(t, res.Content, "directory")
}

func TestPreview_EscapePathIsAnError(t *testing.T) {
	r, _ := newTestResolver(t)

	p := NewPreviewer(r, &fakeProbe{mime: "text/plain"}, 0)
	res := p.Preview(context.Background(), "../outside.txt")

	assert.Equal(t, PreviewError, res.Kind)
}
