// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the interactive session and the static
// table output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI. Init replaces them from the theme.
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success marks days that met the goal (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages and missed days (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for disabled/inactive text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")

	// Info is used for informational text (gray)
	Info color.Color = lipgloss.Color("244")

	// Warning marks days with a run below the goal (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)
)

// Layout styles
var (
	// TitleStyle renders screen titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// TabActiveStyle renders the current screen in the tab bar
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)

	// TabStyle renders the other screens in the tab bar
	TabStyle = lipgloss.NewStyle().Foreground(Muted)

	// SelectedRowStyle highlights the cursor row in lists
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true)

	// FocusedLabelStyle marks the focused form field label
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	// RoundedBorder creates a rounded border with primary color
	RoundedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// Text highlighting styles
var (
	// HighlightStyle for highlighting fuzzy-matched characters (pink, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
