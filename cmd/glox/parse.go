package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glox/lexer"
	"glox/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Print the program's canonical AST form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := mustReadSource(args[0])

		lx := lexer.New(src)
		prog, err := parser.New(lx).ParseProgram()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitLexParse)
		}
		log.Debugf("parsed %d top-level statements", len(prog.Children))

		if prog.String() != "" {
			fmt.Println(prog.String())
		}

		if reportLexErrors(lx) {
			os.Exit(exitLexParse)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
