// ============================================================================
// meinRECHENWERK (mRW) - Parser für arithmetische Ausdrücke
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the mRW REPL
// Author:      msto63
// Created:     2026-08-25
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	mrwlog "github.com/msto63/mRW/core/log"
	mrwexpr "github.com/msto63/mRW/expr"
	mrwast "github.com/msto63/mRW/expr/ast"
	mrwparser "github.com/msto63/mRW/expr/parser"
	mrwstringx "github.com/msto63/mRW/utils/stringx"
)

const sourceName = "<repl>"

// maxEntries limits how many results stay on screen
const maxEntries = 50

// Entry is one evaluated input with its rendered outcome
type Entry struct {
	Input  string
	Tokens string // empty when the token display is off or lexing failed
	Output string
	IsErr  bool
}

// Config holds REPL configuration
type Config struct {
	Prompt         string
	ShowTokens     bool
	MaxInputLength int
	Logger         *mrwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt: "mrw> ",
	}
}

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width      int
	height     int
	showTokens bool
	entries    []Entry

	// Components
	input textinput.Model

	// Input history
	history      []string
	historyIndex int    // -1 = new input
	currentInput string // stash while navigating the history

	// Parsing
	engine  *mrwexpr.Engine
	printer *mrwast.TreePrinter
	prompt  string
}

// New creates a new REPL model
func New(cfg Config) Model {
	if mrwstringx.IsBlank(cfg.Prompt) {
		cfg.Prompt = DefaultConfig().Prompt
	}

	ti := textinput.New()
	ti.Placeholder = "Ausdruck eingeben, z.B. (1 + 2) * 3"
	ti.Prompt = PromptStyle.Render(cfg.Prompt)
	ti.Focus()
	ti.CharLimit = 256

	return Model{
		showTokens:   cfg.ShowTokens,
		input:        ti,
		historyIndex: -1,
		engine: mrwexpr.New(mrwexpr.Options{
			Logger:         cfg.Logger,
			MaxInputLength: cfg.MaxInputLength,
		}),
		printer: mrwast.NewTreePrinter(),
		prompt:  cfg.Prompt,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.entries = nil
			return m, nil

		case tea.KeyCtrlT:
			m.showTokens = !m.showTokens
			return m, nil

		case tea.KeyUp:
			m.historyBack()
			return m, nil

		case tea.KeyDown:
			m.historyForward()
			return m, nil

		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the engine on the current input and records the outcome
func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	m.history = append(m.history, text)
	m.historyIndex = -1
	m.currentInput = ""
	m.input.SetValue("")

	entry := Entry{Input: text}

	result, err := m.engine.Run(sourceName, text)
	if result != nil && m.showTokens && result.Tokens != nil {
		entry.Tokens = mrwparser.TokensString(result.Tokens)
	}
	if err != nil {
		entry.Output = err.Error()
		entry.IsErr = true
	} else {
		entry.Output = m.printer.Print(result.Node)
	}

	m.entries = append(m.entries, entry)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
}

func (m *Model) historyBack() {
	if len(m.history) == 0 {
		return
	}
	if m.historyIndex == -1 {
		m.currentInput = m.input.Value()
		m.historyIndex = len(m.history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *Model) historyForward() {
	if m.historyIndex == -1 {
		return
	}
	if m.historyIndex < len(m.history)-1 {
		m.historyIndex++
		m.input.SetValue(m.history[m.historyIndex])
	} else {
		m.historyIndex = -1
		m.input.SetValue(m.currentInput)
	}
	m.input.CursorEnd()
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("meinRECHENWERK"))
	b.WriteString("\n")

	for _, entry := range m.entries {
		b.WriteString(InputEchoStyle.Render(m.prompt + entry.Input))
		b.WriteString("\n")
		if entry.Tokens != "" {
			b.WriteString(TokenStyle.Render(entry.Tokens))
			b.WriteString("\n")
		}
		if entry.IsErr {
			b.WriteString(ErrorStyle.Render(entry.Output))
		} else {
			b.WriteString(ResultStyle.Render(entry.Output))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(InputStyle.Render(m.input.View()))
	b.WriteString("\n")

	tokenState := "aus"
	if m.showTokens {
		tokenState = "an"
	}
	b.WriteString(HelpStyle.Render(fmt.Sprintf(
		"Enter: analysieren  ↑/↓: Historie  Ctrl+T: Tokens (%s)  Ctrl+L: leeren  Ctrl+C: beenden",
		tokenState)))

	return b.String()
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
