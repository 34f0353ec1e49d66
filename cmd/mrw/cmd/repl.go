// ============================================================================
// meinRECHENWERK (mRW) - Parser für arithmetische Ausdrücke
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive mRW REPL TUI
// Author:      msto63
// Created:     2026-08-25
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/mRW/internal/tui/repl"
	"github.com/spf13/cobra"
)

var replShowTokens bool

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Startet die interaktive Eingabe",
	Long: `Startet die interaktive mRW Eingabe.

Jeder eingegebene Ausdruck wird analysiert und als Syntaxbaum
angezeigt; Fehler erscheinen mit Positionsangabe.

Tastenkürzel:
  Enter       Ausdruck analysieren
  ↑/↓         In der Eingabe-Historie blättern
  Ctrl+T      Token-Anzeige umschalten
  Ctrl+L      Ausgabe leeren
  Ctrl+C/Esc  Beenden`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVarP(&replShowTokens, "tokens", "t", false,
		"Token-Liste zu jedem Ergebnis anzeigen")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	return repl.Run(repl.Config{
		Prompt:         cfg.GetString("repl.prompt", "mrw> "),
		ShowTokens:     replShowTokens,
		MaxInputLength: cfg.GetInt("parser.max_input_length", 0),
		Logger:         newLogger(cfg),
	})
}
