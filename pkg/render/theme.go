package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme represents a color scheme for schematic rendering
type Theme int

const (
	// ThemeLight draws on a white background
	ThemeLight Theme = iota
	// ThemeDark draws on a near-black background
	ThemeDark
)

// Colors defines the color scheme for rendering a diagram
type Colors struct {
	// Background and grid
	Background color.NRGBA
	Grid       color.NRGBA

	// Components and connection points
	Component color.NRGBA
	Selected  color.NRGBA
	Junction  color.NRGBA

	// Gesture overlays
	WireInProgress color.NRGBA
	SelectionRect  color.NRGBA
	Cursor         color.NRGBA
}

// GetColors returns the color scheme for the given theme
func GetColors(theme Theme) *Colors {
	switch theme {
	case ThemeDark:
		return getDarkTheme()
	default:
		return getLightTheme()
	}
}

func getLightTheme() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // White
		Grid:       color.NRGBA{R: 220, G: 220, B: 220, A: 255}, // Light gray

		Component: color.NRGBA{R: 0, G: 0, B: 0, A: 255},   // Black
		Selected:  color.NRGBA{R: 220, G: 0, B: 0, A: 255}, // Red
		Junction:  color.NRGBA{R: 0, G: 132, B: 0, A: 255}, // Dark green

		WireInProgress: color.NRGBA{R: 0, G: 0, B: 132, A: 255}, // Dark blue
		SelectionRect:  color.NRGBA{R: 255, G: 0, B: 0, A: 128}, // Red (translucent)
		Cursor:         color.NRGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

func getDarkTheme() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255}, // Dark gray (almost black)
		Grid:       color.NRGBA{R: 60, G: 60, B: 60, A: 255}, // Medium gray

		Component: color.NRGBA{R: 220, G: 220, B: 220, A: 255}, // Light gray
		Selected:  color.NRGBA{R: 255, G: 100, B: 100, A: 255}, // Light red
		Junction:  color.NRGBA{R: 0, G: 255, B: 0, A: 255},     // Bright green

		WireInProgress: color.NRGBA{R: 0, G: 150, B: 255, A: 255},   // Bright blue
		SelectionRect:  color.NRGBA{R: 255, G: 100, B: 100, A: 128}, // Light red (translucent)
		Cursor:         color.NRGBA{R: 160, G: 160, B: 160, A: 255},
	}
}

// String returns the theme name as a string
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q", s)
}
