package config

// Layout constants
const (
	// Panel layout
	LeftPanelWidthRatio = 0.6

	// Table dimensions
	DefaultColumnNameWidth     = 45
	DefaultColumnSizeWidth     = 10
	DefaultColumnKindWidth     = 12
	DefaultColumnModifiedWidth = 16
	DefaultTableHeight         = 20

	// Entry display
	EntryNameTruncateLength = 37
	KindTruncateLength      = 10

	// Dialog dimensions
	DialogDefaultWidth   = 50
	DialogLargeWidth     = 70
	DialogDefaultPadding = 2

	// Viewport and spacing
	DefaultViewportPadding = 2
	DefaultMarginSize      = 1
)
