package theme

// Terminal-compatible color constants using ANSI standard colors
// These colors work consistently across different terminal themes
const (
	// Primary colors (ANSI standard)
	ColorWhite        = "#FFFFFF" // ANSI 15 - primary text
	ColorBrightBlack  = "#808080" // ANSI 8 - secondary text
	ColorBrightBlue   = "#5C7CFA" // ANSI 12 - primary accent
	ColorBrightCyan   = "#51CF66" // ANSI 14 - secondary accent
	ColorBrightGreen  = "#51CF66" // ANSI 10 - success
	ColorBrightYellow = "#FFD43B" // ANSI 11 - warning
	ColorBrightRed    = "#FF6B6B" // ANSI 9 - error

	// Entry colors
	ColorDirectory    = "#5C7CFA" // Blue, directories stand out first
	ColorFileImage    = "#74C0FC" // Light blue
	ColorFileDocument = "#51CF66" // Green
	ColorFileArchive  = "#FCC419" // Amber
	ColorFileVideo    = "#FF8787" // Light red
	ColorFileAudio    = "#DA77F2" // Purple
	ColorFileText     = "#74C0FC" // Cyan
	ColorFileUnknown  = "#808080" // Grey, stat failed
)

// GetEntryColor returns the color for a given entry category
func GetEntryColor(category string) string {
	switch category {
	case "directory":
		return ColorDirectory
	case "image":
		return ColorFileImage
	case "document":
		return ColorFileDocument
	case "archive":
		return ColorFileArchive
	case "video":
		return ColorFileVideo
	case "audio":
		return ColorFileAudio
	case "text":
		return ColorFileText
	case "unknown":
		return ColorFileUnknown
	default:
		return ColorWhite
	}
}

// GetMessageColor returns the color for a given message type.
// The ordering matches the messaging package constants.
func GetMessageColor(messageType int) string {
	const (
		messageInfo = iota
		messageSuccess
		messageWarning
		messageError
	)

	switch messageType {
	case messageError:
		return ColorBrightRed
	case messageSuccess:
		return ColorBrightGreen
	case messageWarning:
		return ColorBrightYellow
	default: // info
		return ColorBrightCyan
	}
}

// GetMessageIcon returns the icon for a given message type
func GetMessageIcon(messageType int) string {
	const (
		messageInfo = iota
		messageSuccess
		messageWarning
		messageError
	)

	switch messageType {
	case messageError:
		return "❌ "
	case messageSuccess:
		return "✅ "
	case messageWarning:
		return "⚠️ "
	default: // info
		return "ℹ️ "
	}
}
