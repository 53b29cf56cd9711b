package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/ui/styles"
)

func titleStyle() lipgloss.Style { return styles.T().S().Title }

func artistStyle() lipgloss.Style { return styles.T().S().Muted }

func timeStyle() lipgloss.Style { return styles.T().S().Muted }

func selectionStyle() lipgloss.Style { return styles.T().S().Options }
