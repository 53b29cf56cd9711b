// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the player screen.
const (
	// BarMargin is the number of blank cells on each side of the bar.
	BarMargin = 2

	// MinBarWidth is the narrowest bar that still accepts pointer input.
	MinBarWidth = 5

	// BarHeight is the bar row plus the options popup row.
	BarHeight = 2
)
