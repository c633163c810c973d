package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Filter buttons share one look in the browser and in text output.
	Button       = lipgloss.NewStyle().Foreground(Text).Padding(0, 1)
	ButtonActive = lipgloss.NewStyle().Foreground(Base).Background(Lavender).Padding(0, 1)
	ButtonFocus  = lipgloss.NewStyle().Foreground(Peach).Underline(true).Padding(0, 1)

	// Category badges: Accent marks categories that carry a css class on the
	// web, such as launches and hackathons.
	Badge       = lipgloss.NewStyle().Foreground(Base).Background(Sapphire).Padding(0, 1)
	BadgeAccent = Badge.Background(Peach)

	RecordTitle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Tag         = lipgloss.NewStyle().Foreground(Lavender)
	Link        = lipgloss.NewStyle().Foreground(Green).Underline(true)
	Empty       = lipgloss.NewStyle().Foreground(Subtext0).Italic(true)
)
