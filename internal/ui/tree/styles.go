package tree

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for tree output.
type Styles struct {
	Kind      lipgloss.Style
	Component lipgloss.Style
	Attr      lipgloss.Style
	Text      lipgloss.Style
	RawHTML   lipgloss.Style
	Branch    lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Kind:      plain,
			Component: plain,
			Attr:      plain,
			Text:      plain,
			RawHTML:   plain,
			Branch:    plain,
		}
	}
	return &Styles{
		Kind:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Component: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Attr:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		RawHTML:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Branch:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
