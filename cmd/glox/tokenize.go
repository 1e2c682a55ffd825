package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glox/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file|->",
	Short: "Print the token stream, one canonical token per line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := mustReadSource(args[0])

		lx := lexer.New(src)
		count := 0
		for {
			tok, ok := lx.Next()
			if !ok {
				break
			}
			fmt.Println(tok.String())
			count++
		}
		log.Debugf("tokenized %d tokens, %d lexical errors", count, len(lx.Errors()))

		if reportLexErrors(lx) {
			os.Exit(exitLexParse)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
