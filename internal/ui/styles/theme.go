package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Played portion of the bar, blended from Primary to Secondary
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color // Also the unplayed track

	// Selected range background and the options popup
	BgSelection lipgloss.Color
	FgOptions   lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Track     lipgloss.Style // Unplayed cells
	Selection lipgloss.Style // Background of selected cells
	Options   lipgloss.Style
	Key       lipgloss.Style // Key hints inside the options popup
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

// Palette holds color overrides as hex strings ("#rrggbb") or ANSI
// numbers. Empty fields keep the default.
type Palette struct {
	Primary   string
	Secondary string
	Selection string
	Options   string
	Muted     string
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgSelection: lipgloss.Color("#3b3355"),
	FgOptions:   lipgloss.Color("#f1a208"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var current = defaultTheme

// T returns the active theme.
func T() *Theme {
	return &current
}

// Apply replaces the active theme with the defaults overridden by p.
func Apply(p Palette) {
	t := defaultTheme
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Primary, p.Primary)
	set(&t.Secondary, p.Secondary)
	set(&t.BgSelection, p.Selection)
	set(&t.FgOptions, p.Options)
	set(&t.FgMuted, p.Muted)
	t.styles = nil
	current = t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     base.Bold(true),
		Track:     lipgloss.NewStyle().Foreground(t.FgSubtle),
		Selection: lipgloss.NewStyle().Background(t.BgSelection),
		Options: lipgloss.NewStyle().
			Foreground(t.FgOptions),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
