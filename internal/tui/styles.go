// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0")).
			Padding(0, 1)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	slotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
