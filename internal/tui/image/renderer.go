package image

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/disintegration/imaging"
)

// Render limits
const (
	DefaultMaxCols = 120
	DefaultMaxRows = 48

	// Approximate terminal cell footprint in pixels
	CellPixelWidth  = 8
	CellPixelHeight = 16
)

// TerminalType identifies the detected terminal emulator
type TerminalType string

// Known terminal types
const (
	TerminalKitty   TerminalType = "kitty"
	TerminalITerm2  TerminalType = "iterm2"
	TerminalWezTerm TerminalType = "wezterm"
	TerminalGhostty TerminalType = "ghostty"
	TerminalGeneric TerminalType = "generic"
)

// GraphicsProtocol identifies the inline-graphics protocol to use
type GraphicsProtocol string

// Supported graphics protocols
const (
	ProtocolKitty GraphicsProtocol = "kitty"
	ProtocolITerm GraphicsProtocol = "iterm2"
	ProtocolSixel GraphicsProtocol = "sixel"
	ProtocolNone  GraphicsProtocol = "none"
)

// RenderError wraps a rendering failure with terminal context
type RenderError struct {
	Terminal string
	Protocol string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed on %s (%s): %v", e.Terminal, e.Protocol, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Renderer encodes local image files for inline terminal display
type Renderer struct {
	TerminalType TerminalType
	Protocol     GraphicsProtocol
	MaxCols      int
	MaxRows      int
	Supported    bool
}

// NewRenderer creates a renderer with auto-detected terminal capabilities
func NewRenderer() *Renderer {
	r := &Renderer{
		MaxCols: DefaultMaxCols,
		MaxRows: DefaultMaxRows,
	}

	termType, protocol := DetectTerminal()
	r.TerminalType = termType
	r.Protocol = protocol
	r.Supported = protocol != ProtocolNone

	return r
}

// DetectTerminal inspects the environment to pick a graphics protocol
func DetectTerminal() (TerminalType, GraphicsProtocol) {
	term := strings.ToLower(os.Getenv("TERM"))
	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	kittyWindow := os.Getenv("KITTY_WINDOW_ID")
	ghosttyPath := os.Getenv("GHOSTTY")

	if kittyWindow != "" || strings.Contains(term, "kitty") {
		return TerminalKitty, ProtocolKitty
	}

	// Ghostty speaks the kitty protocol
	if ghosttyPath != "" || termProgram == "ghostty" || strings.Contains(term, "ghostty") {
		return TerminalGhostty, ProtocolKitty
	}

	if termProgram == "iterm.app" {
		return TerminalITerm2, ProtocolITerm
	}

	// WezTerm supports the iTerm2 protocol
	if termProgram == "wezterm" {
		return TerminalWezTerm, ProtocolITerm
	}

	for _, sixelTerm := range []string{"xterm-sixel", "mlterm", "yaft"} {
		if strings.Contains(term, sixelTerm) {
			return TerminalGeneric, ProtocolSixel
		}
	}

	return TerminalGeneric, ProtocolNone
}

// IsSupported reports whether the terminal can display inline graphics
func (r *Renderer) IsSupported() bool {
	return r.Supported
}

// SetMaxSize overrides the cell budget for rendered images
func (r *Renderer) SetMaxSize(cols, rows int) {
	if cols > 0 {
		r.MaxCols = cols
	}
	if rows > 0 {
		r.MaxRows = rows
	}
}

// Render encodes the image file for the detected protocol, scaled to fit
// the cell budget. Returns the escape-sequence payload to write at the
// cursor position.
func (r *Renderer) Render(path string) (string, error) {
	if !r.Supported {
		return "", &RenderError{
			Terminal: string(r.TerminalType),
			Protocol: string(r.Protocol),
			Err:      fmt.Errorf("terminal has no graphics protocol"),
		}
	}

	img, err := imaging.Open(path)
	if err != nil {
		return "", &RenderError{
			Terminal: string(r.TerminalType),
			Protocol: string(r.Protocol),
			Err:      fmt.Errorf("failed to open image: %w", err),
		}
	}

	fitted := imaging.Fit(img, r.MaxCols*CellPixelWidth, r.MaxRows*CellPixelHeight, imaging.Lanczos)

	var b strings.Builder
	switch r.Protocol {
	case ProtocolKitty:
		err = rasterm.KittyWriteImage(&b, fitted, rasterm.KittyImgOpts{})
	case ProtocolITerm:
		err = rasterm.ItermWriteImage(&b, fitted)
	case ProtocolSixel:
		err = rasterm.SixelWriteImage(&b, toPaletted(fitted))
	default:
		err = fmt.Errorf("no graphics protocol")
	}
	if err != nil {
		return "", &RenderError{
			Terminal: string(r.TerminalType),
			Protocol: string(r.Protocol),
			Err:      err,
		}
	}

	return b.String(), nil
}

// Size returns the cell footprint the rendered image will occupy
func (r *Renderer) Size(path string) (cols, rows int, err error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, err
	}
	fitted := imaging.Fit(img, r.MaxCols*CellPixelWidth, r.MaxRows*CellPixelHeight, imaging.Lanczos)
	bounds := fitted.Bounds()
	cols = (bounds.Dx() + CellPixelWidth - 1) / CellPixelWidth
	rows = (bounds.Dy() + CellPixelHeight - 1) / CellPixelHeight
	return cols, rows, nil
}

// toPaletted converts an image for the sixel encoder
func toPaletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	return paletted
}
