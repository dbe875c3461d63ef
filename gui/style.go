package gui

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor       uint32
	PanelBorderColor uint32

	// Button colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Selection colors
	SelectedBgColor uint32
	HoveredBgColor  uint32

	// Separator
	SeparatorColor uint32

	// Menu bar / dropdown colors
	MenuBarBgColor  uint32
	DropdownBgColor uint32
	CheckmarkColor  uint32

	// Tab bar colors
	TabBarBgColor     uint32 // Tab strip background
	TabColor          uint32 // Inactive tab
	TabHoveredColor   uint32 // Hovered tab
	TabActiveColor    uint32 // Selected tab
	TabFocusedColor   uint32 // Selected tab in the focused leaf
	DockBorderColor   uint32 // Border between split regions
	DockContentColor  uint32 // Leaf content background
	CloseButtonColor  uint32 // Tab close glyph

	// Slider colors
	SliderTrackColor uint32 // Background track
	SliderFillColor  uint32 // Filled portion
	SliderGrabColor  uint32 // Handle/grab

	// Font
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Spacing
	ItemSpacing   float32 // Default gap between items
	PanelPadding  float32
	ButtonPadding float32

	// Tab bar sizing
	TabPadding   float32 // Horizontal padding inside a tab button
	TabBarHeight float32 // 0 = derive from line height

	// Border
	BorderSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor: RGBA(60, 90, 140, 255),
		HoveredBgColor:  RGBA(60, 60, 65, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		MenuBarBgColor:  RGBA(30, 30, 34, 255),
		DropdownBgColor: RGBA(36, 36, 40, 250),
		CheckmarkColor:  RGBA(120, 200, 120, 255),

		TabBarBgColor:    RGBA(26, 26, 30, 255),
		TabColor:         RGBA(40, 40, 46, 255),
		TabHoveredColor:  RGBA(58, 58, 66, 255),
		TabActiveColor:   RGBA(70, 70, 80, 255),
		TabFocusedColor:  RGBA(66, 96, 146, 255),
		DockBorderColor:  RGBA(12, 12, 14, 255),
		DockContentColor: RGBA(33, 33, 38, 255),
		CloseButtonColor: RGBA(180, 180, 180, 255),

		SliderTrackColor: RGBA(40, 40, 40, 255),
		SliderFillColor:  RGBA(90, 120, 180, 255),
		SliderGrabColor:  RGBA(200, 200, 200, 255),

		FontScale:  1.5,
		CharWidth:  8,
		CharHeight: 8,

		ItemSpacing:   SpaceSM,
		PanelPadding:  SpaceMD,
		ButtonPadding: 6,

		TabPadding:   SpaceMD,
		TabBarHeight: 0,

		BorderSize: 1,
	}
}
