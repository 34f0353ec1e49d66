// ============================================================================
// meinRECHENWERK (mRW) - Parser für arithmetische Ausdrücke
// ============================================================================
//
// Package:     cmd
// Description: CLI command for one-shot expression parsing
// Author:      msto63
// Created:     2026-08-25
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strings"

	mrwexpr "github.com/msto63/mRW/expr"
	mrwast "github.com/msto63/mRW/expr/ast"
	mrwparser "github.com/msto63/mRW/expr/parser"
	"github.com/spf13/cobra"
)

var (
	parseShowTokens bool
	parseShowTree   bool
	parseSourceName string
)

var parseCmd = &cobra.Command{
	Use:   "parse <ausdruck>",
	Short: "Analysiert einen arithmetischen Ausdruck",
	Long: `Analysiert einen arithmetischen Ausdruck und gibt den
Syntaxbaum aus.

Beispiele:
  mrw parse "1 + 2 * 3"
  mrw parse --tokens "(1.5 - .5) / 2"
  mrw parse --tree -- "-4 * 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseShowTokens, "tokens", "t", false,
		"Token-Liste mit ausgeben")
	parseCmd.Flags().BoolVar(&parseShowTree, "tree", false,
		"Baum eingerückt statt als Formel ausgeben")
	parseCmd.Flags().StringVar(&parseSourceName, "source-name", "<stdin>",
		"Quellname für Fehlermeldungen")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	engine := mrwexpr.New(mrwexpr.Options{
		Logger:         newLogger(cfg),
		MaxInputLength: cfg.GetInt("parser.max_input_length", 0),
	})

	input := strings.Join(args, " ")
	result, err := engine.Run(parseSourceName, input)
	if err != nil {
		printError("Analyse fehlgeschlagen", err)
		return err
	}

	if parseShowTokens {
		fmt.Println(mrwparser.TokensString(result.Tokens))
	}

	if parseShowTree {
		fmt.Println(mrwast.NewTreePrinter().Print(result.Node))
	} else {
		fmt.Println(result.Node)
	}

	return nil
}
