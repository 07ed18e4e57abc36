package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kievzenit/lac/internal/compiler"
)

var LexCmd = &cobra.Command{
	Use:   "lex <input.la> <output>",
	Short: "Write the token stream of a source file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, args, compiler.LexStage)
	},
}

var dumpTree bool

var ParseCmd = &cobra.Command{
	Use:   "parse <input.la> <output>",
	Short: "Write the syntax error of a source file, if any",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runStage(cmd, args, compiler.SyntaxStage); err != nil {
			return err
		}

		if !dumpTree {
			return nil
		}

		root, err := compiler.ParseFile(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(root))
		return err
	},
}

var CheckCmd = &cobra.Command{
	Use:   "check <input.la> <output>",
	Short: "Write the syntax or semantic diagnostics of a source file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, args, compiler.SemanticStage)
	},
}

var GenCmd = &cobra.Command{
	Use:   "gen <input.la> <output.c>",
	Short: "Translate a source file to C, or write its diagnostics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, args, compiler.GenerateStage)
	},
}

func init() {
	ParseCmd.Flags().BoolVar(&dumpTree, "dump", false, "print the syntax tree to stdout")
}

func runStage(cmd *cobra.Command, args []string, run compiler.Stage) error {
	inputPath, outputPath := args[0], args[1]

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	var written bytes.Buffer
	if err := compiler.RunFile(inputPath, io.MultiWriter(out, &written), run); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if verbose {
		fmt.Fprintf(
			cmd.ErrOrStderr(),
			"%s: read %s from %s, wrote %s to %s\n",
			cmd.Name(),
			humanize.Bytes(uint64(info.Size())), inputPath,
			humanize.Bytes(uint64(written.Len())), outputPath,
		)
	}

	return nil
}
