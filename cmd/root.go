package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lac",
	Short: "lac compiles LA algorithms to C",
	Long: `lac is a compiler for the LA teaching language.

Commands:
  lex    List the tokens of a source file
  parse  Check the syntax of a source file
  check  Check the syntax and semantics of a source file
  gen    Translate a source file to C
`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report input and output sizes on stderr")

	rootCmd.AddCommand(LexCmd, ParseCmd, CheckCmd, GenCmd)
}
