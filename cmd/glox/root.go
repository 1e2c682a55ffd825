package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"glox/lexer"
)

// Exit statuses: lexical/parse failures and evaluation failures map to
// different codes so callers can tell them apart.
const (
	exitLexParse = 65
	exitRuntime  = 70
)

var log = commonlog.GetLogger("glox")

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "glox",
	Short: "Interpreter for a small lox-style expression language",
	Long: `glox runs a three-stage pipeline (lexer, parser, tree-walking
evaluator) over a source file. Each stage is exposed as a subcommand;
with no subcommand an interactive session starts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbosity, nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readSource loads a source file, or stdin when the argument is "-".
func readSource(arg string) (string, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func mustReadSource(arg string) string {
	src, err := readSource(arg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return src
}

// reportLexErrors prints accumulated lexical errors to stderr and
// reports whether there were any.
func reportLexErrors(lx *lexer.Lexer) bool {
	for _, e := range lx.Errors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return lx.HasErrors()
}
