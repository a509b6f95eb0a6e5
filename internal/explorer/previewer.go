package explorer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

// PreviewKind classifies a preview result
type PreviewKind int

// Preview kind constants
const (
	PreviewText PreviewKind = iota
	PreviewBinary
	PreviewError
)

// Result holds the outcome of a preview request. Binary files never expose
// decoded content, only the placeholder message.
type Result struct {
	Kind      PreviewKind
	MIME      string
	Content   string
	Truncated bool
	Warning   string // soft warning, e.g. probe unavailable
}

// probeRunner is the slice of the command runner the previewer needs
type probeRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Previewer reads a size-capped text preview of a file, using an external
// MIME probe to keep binary content out of the display.
type Previewer struct {
	resolver *Resolver
	runner   probeRunner
	maxBytes int64
}

// DefaultPreviewMaxBytes caps text previews at 1 MiB
const DefaultPreviewMaxBytes = 1024 * 1024

// NewPreviewer creates a previewer. maxBytes <= 0 selects the default cap.
func NewPreviewer(resolver *Resolver, runner probeRunner, maxBytes int64) *Previewer {
	if maxBytes <= 0 {
		maxBytes = DefaultPreviewMaxBytes
	}
	return &Previewer{resolver: resolver, runner: runner, maxBytes: maxBytes}
}

// Preview resolves the requested file and returns its preview. Errors are
// folded into the result as PreviewError so callers always have something
// to display.
func (p *Previewer) Preview(ctx context.Context, requested string) Result {
	path, err := p.resolver.Resolve(requested)
	if err != nil {
		return Result{Kind: PreviewError, Content: fmt.Sprintf("Error: %v", err)}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{Kind: PreviewError, Content: fmt.Sprintf("Error: %v", err)}
	}
	if info.IsDir() {
		return Result{Kind: PreviewError, Content: "This is a directory. Select a file to view its content."}
	}

	mime, warning := p.detectMIME(ctx, path)
	if mime != "" && !isTextLike(mime) {
		return Result{
			Kind:    PreviewBinary,
			MIME:    mime,
			Content: fmt.Sprintf("File appears to be binary (%s). Content not shown.", mime),
			Warning: warning,
		}
	}

	content, truncated, err := p.readCapped(path)
	if err != nil {
		return Result{Kind: PreviewError, MIME: mime, Content: fmt.Sprintf("Error reading file: %v", err)}
	}

	return Result{Kind: PreviewText, MIME: mime, Content: content, Truncated: truncated, Warning: warning}
}

// detectMIME asks the external probe first and falls back to content
// sniffing when it is unavailable. Returns an empty type with a warning
// when every method fails, which callers treat as "assume text".
func (p *Previewer) detectMIME(ctx context.Context, path string) (string, string) {
	out, err := p.runner.Run(ctx, "file", "--mime-type", "-b", path)
	if err == nil {
		return strings.TrimSpace(out), ""
	}
	logrus.Debugf("MIME probe failed for %s: %v", path, err)

	mtype, serr := mimetype.DetectFile(path)
	if serr == nil {
		return mtype.String(), "MIME probe unavailable, type sniffed from content"
	}

	return "", "MIME detection unavailable, attempting text decode"
}

// readCapped reads at most maxBytes of the file
func (p *Previewer) readCapped(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", false, ErrAccessDenied
		}
		return "", false, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, p.maxBytes))
	if err != nil {
		return "", false, err
	}

	info, err := f.Stat()
	truncated := err == nil && info.Size() > p.maxBytes
	return string(data), truncated, nil
}

// isTextLike mirrors the probe policy: anything reporting text or json is
// previewable, everything else is binary.
func isTextLike(mime string) bool {
	return strings.Contains(mime, "text") || strings.Contains(mime, "json")
}
