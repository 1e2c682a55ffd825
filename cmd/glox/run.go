package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file|->",
	Short: "Run the program; print statements only, no final value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		evaluateSource(mustReadSource(args[0]), false)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
