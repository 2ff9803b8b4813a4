package window

// surfaceConfig holds the construction-time settings shared by every
// Surface backend.
type surfaceConfig struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the requested client area width in pixels.
	width int

	// height is the requested client area height in pixels.
	height int
}

func defaultSurfaceConfig() surfaceConfig {
	return surfaceConfig{
		title:  "Oxy View",
		width:  1280,
		height: 720,
	}
}

// WindowBuilderOption is a functional option for configuring a Surface backend.
type WindowBuilderOption func(*surfaceConfig)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title string
//
// Returns:
//   - WindowBuilderOption: functional option to set the title
func WithTitle(title string) WindowBuilderOption {
	return func(c *surfaceConfig) {
		if title != "" {
			c.title = title
		}
	}
}

// WithWidth sets the requested client area width in pixels.
//
// Parameters:
//   - width: width in pixels (values < 1 are ignored)
//
// Returns:
//   - WindowBuilderOption: functional option to set the width
func WithWidth(width int) WindowBuilderOption {
	return func(c *surfaceConfig) {
		if width >= 1 {
			c.width = width
		}
	}
}

// WithHeight sets the requested client area height in pixels.
//
// Parameters:
//   - height: height in pixels (values < 1 are ignored)
//
// Returns:
//   - WindowBuilderOption: functional option to set the height
func WithHeight(height int) WindowBuilderOption {
	return func(c *surfaceConfig) {
		if height >= 1 {
			c.height = height
		}
	}
}
