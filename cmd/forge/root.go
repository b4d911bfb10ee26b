package main

import (
	"os"
	"path/filepath"

	"forge/internal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "forge [script]",
	Short: "Forge lexer, script runner and REPL",
	Long: `Forge tokenizes forge scripts and prints the tokens it finds.

With a script path it scans the file once. Without arguments it starts
a REPL that scans every line typed, until "exit".
`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: noColor})
		logrus.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tp := internal.NewTokenPrinter()
		if noColor {
			tp.Disable()
		}
		interp := internal.NewInterpreter(stdPrinter{}, tp, logrus.StandardLogger())

		if len(args) == 0 {
			return interp.StartREPL(os.Stdin)
		}

		absPath, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		return interp.ExecuteScript(absPath)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level (trace, debug, info, warning, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
