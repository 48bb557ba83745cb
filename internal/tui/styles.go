package tui

import "github.com/charmbracelet/lipgloss"

const appTitle = "DICTADMIN"

// Color palette
var (
	primaryColor = lipgloss.Color("#7D56F4") // Purple
	successColor = lipgloss.Color("#43BF6D") // Green
	errorColor   = lipgloss.Color("#FF5F5F") // Red
	subtleColor  = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	successNoticeStyle = lipgloss.NewStyle().
				Foreground(successColor)

	errorNoticeStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)
)

// placeholderDash is shown when a cross-reference has not resolved yet.
const placeholderDash = "-"
