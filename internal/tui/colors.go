package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the board palette. Values are lipgloss color strings.
type Theme struct {
	Dark bool

	Border        string
	PrimaryText   string
	SecondaryText string
	DisabledText  string
	Placeholder   string
	HelpText      string

	AccentMain   string // logo, active borders
	AccentBright string // highlights, current selection

	Error   string
	Success string
	Warning string

	// shimmer ramp for the selected task, as RGB
	ShimmerBase      [3]int
	ShimmerHighlight [3]int
}

// DarkTheme is the purple-on-dark palette
var DarkTheme = Theme{
	Dark:             true,
	Border:           "#3A3F55",
	PrimaryText:      "#E6EAF2",
	SecondaryText:    "#B1B8C7",
	DisabledText:     "#6D7383",
	Placeholder:      "#B1B8C7",
	HelpText:         "240",
	AccentMain:       "#7C3AED",
	AccentBright:     "#A78BFA",
	Error:            "#EF4444",
	Success:          "#22C55E",
	Warning:          "#F59E0B",
	ShimmerBase:      [3]int{177, 184, 199}, // #B1B8C7
	ShimmerHighlight: [3]int{234, 230, 255}, // #EAE6FF
}

// LightTheme keeps the purple accents readable on a light terminal
var LightTheme = Theme{
	Border:           "#C7CBD6",
	PrimaryText:      "#1F2430",
	SecondaryText:    "#4B5263",
	DisabledText:     "#9AA0AE",
	Placeholder:      "#7A8194",
	HelpText:         "245",
	AccentMain:       "#6D28D9",
	AccentBright:     "#7C3AED",
	Error:            "#DC2626",
	Success:          "#16A34A",
	Warning:          "#D97706",
	ShimmerBase:      [3]int{75, 82, 99},   // #4B5263
	ShimmerHighlight: [3]int{124, 58, 237}, // #7C3AED
}

// ThemeFor picks the palette for the dark mode setting
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
