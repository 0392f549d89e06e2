package render

import "github.com/charmbracelet/lipgloss"

// Prefix labels for rewritten lines. Fixed text; only the styling varies
// between themes.
const (
	LabelCompile     = "[Compile]"
	LabelLink        = "[Link]"
	LabelCompileLink = "[Compile + Link]"
	LabelLibrary     = "[Library]"
)

// Theme defines the styling of the category prefixes.
type Theme struct {
	Name        string
	Compile     lipgloss.Style
	Link        lipgloss.Style
	CompileLink lipgloss.Style
	Library     lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:        "default",
		Compile:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Link:        lipgloss.NewStyle().Foreground(lipgloss.Color("45")),  // cyan
		CompileLink: lipgloss.NewStyle().Foreground(lipgloss.Color("41")),  // green
		Library:     lipgloss.NewStyle().Foreground(lipgloss.Color("225")), // pale purple
	}
}

// MonoTheme returns a monochrome theme for non-interactive output and
// NO_COLOR environments. The bracketed labels stay, unstyled.
func MonoTheme() Theme {
	return Theme{
		Name:        "mono",
		Compile:     lipgloss.NewStyle(),
		Link:        lipgloss.NewStyle(),
		CompileLink: lipgloss.NewStyle(),
		Library:     lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
