package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	PlayingDotStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	PausedDotStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	IdleDotStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	EditBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DurationStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	CountdownStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	CurrentTaskStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)
)
