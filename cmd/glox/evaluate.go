package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glox/interpreter"
	"glox/lexer"
	"glox/parser"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file|->",
	Short: "Evaluate the program and print its final value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		evaluateSource(mustReadSource(args[0]), true)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

// evaluateSource runs the full pipeline. The final value prints with
// the general renderer (whole numbers keep their ".0"); run mode
// suppresses it but still surfaces errors.
func evaluateSource(src string, printResult bool) {
	lx := lexer.New(src)
	prog, err := parser.New(lx).ParseProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitLexParse)
	}
	if reportLexErrors(lx) {
		os.Exit(exitLexParse)
	}
	log.Debugf("parsed %d top-level statements", len(prog.Children))

	result, err := interpreter.New().Eval(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitRuntime)
	}

	if printResult {
		fmt.Println(result.String())
	}
}
