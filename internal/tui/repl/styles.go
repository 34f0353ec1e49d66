// ============================================================================
// meinRECHENWERK (mRW) - Parser für arithmetische Ausdrücke
// ============================================================================
//
// Package:     repl
// Description: Lipgloss styles for the mRW REPL TUI
// Author:      msto63
// Created:     2026-08-25
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	TokenStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)
