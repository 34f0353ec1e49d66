package cmd

import (
	"fmt"
	"os"

	mrwconfig "github.com/msto63/mRW/core/config"
	mrwlog "github.com/msto63/mRW/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mrw",
	Short: "meinRECHENWERK - Parser für arithmetische Ausdrücke",
	Long: `meinRECHENWERK ist ein leichtgewichtiges Front-End für
arithmetische Ausdrücke: Ganzzahlen, Dezimalzahlen, die Operatoren
+ - * /, Klammern und Vorzeichen.

Befehle:
  parse    - Analysiert einen Ausdruck und zeigt Tokens und Baum
  repl     - Startet die interaktive Eingabe
  version  - Zeigt die Version an`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadConfig reads the configuration file. A missing default file is not
// an error; an explicitly named file must exist.
func loadConfig() (*mrwconfig.Config, error) {
	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
		if _, err := os.Stat(path); err != nil {
			return mrwconfig.Empty(), nil
		}
	}
	return mrwconfig.Load(path)
}

// newLogger builds the CLI logger from config and the --verbose flag
func newLogger(cfg *mrwconfig.Config) *mrwlog.Logger {
	level, err := mrwlog.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		level = mrwlog.DefaultLevel()
	}
	if verbose {
		level = mrwlog.LevelDebug
	}

	format, err := mrwlog.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		format = mrwlog.FormatText
	}

	return mrwlog.NewWithConfig(mrwlog.Config{
		Level:  level,
		Format: format,
		Name:   "mrw",
	})
}
