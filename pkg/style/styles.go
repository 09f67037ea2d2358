package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Semantic styles used across command output. Colors adapt to light and
// dark terminal themes.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"})

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#107510", Dark: "#4eba4e"})

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#787878", Dark: "#8a8a8a"})

	Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#c00020", Dark: "#ff5f5f"})
)

func init() {
	// Keep pterm and lipgloss in agreement about color support.
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.EnvColorProfile() == termenv.Ascii {
		pterm.DisableColor()
	}
}
