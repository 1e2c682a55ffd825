package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"glox/interpreter"
	"glox/lexer"
	"glox/parser"
	"glox/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL() error {
	home, _ := os.UserHomeDir()
	histPath := ""
	if home != "" {
		histPath = filepath.Join(home, ".glox_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "glox> ",
		HistoryFile:       histPath,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("glox REPL — :help for commands, :quit to exit.")
	fmt.Println("Multi-line blocks supported ({ ... }); state persists across inputs.")
	fmt.Println()

	// One interpreter for the whole session, so variables persist.
	session := interpreter.New()

	var buf strings.Builder
	depth := 0

	for {
		if depth > 0 {
			rl.SetPrompt("....> ")
		} else {
			rl.SetPrompt("glox> ")
		}

		line, err := rl.Readline()

		if err == readline.ErrInterrupt {
			if buf.Len() > 0 || depth > 0 {
				buf.Reset()
				depth = 0
				fmt.Println("^C (buffer cleared)")
			}
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trim := strings.TrimSpace(line)

		if depth == 0 && buf.Len() == 0 && strings.HasPrefix(trim, ":") {
			if quit := handleREPLCommand(trim, &buf, &depth); quit {
				return nil
			}
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		depth += braceDepthDelta(line)
		if depth > 0 {
			continue
		}
		depth = 0

		src := buf.String()
		buf.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}

		evalChunk(session, src)
	}
}

// evalChunk runs one REPL input against the shared session. The
// resulting value echoes back unless it is nil (print output already
// went to stdout).
func evalChunk(session *interpreter.Interpreter, src string) {
	lx := lexer.New(src)
	prog, err := parser.New(lx).ParseProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if reportLexErrors(lx) {
		return
	}

	result, err := session.Eval(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if result.Kind != value.KindNil {
		fmt.Println(result.String())
	}
}

func handleREPLCommand(cmd string, buf *strings.Builder, depth *int) (quit bool) {
	switch cmd {
	case ":q", ":quit", ":exit":
		return true

	case ":h", ":help":
		fmt.Println("Commands:")
		fmt.Println("  :help     Show this help")
		fmt.Println("  :quit     Exit the REPL")
		fmt.Println("  :reset    Clear buffered multi-line input")
		fmt.Println()
		fmt.Println("Blocks may span lines; input runs once braces balance.")
		return false

	case ":reset":
		buf.Reset()
		*depth = 0
		fmt.Println("(buffer cleared)")
		return false

	default:
		fmt.Println("Unknown command. Try :help")
		return false
	}
}

// braceDepthDelta is a line-level heuristic for multi-line input:
// braces inside string literals or comments will fool it, which is
// acceptable for interactive use.
func braceDepthDelta(line string) int {
	delta := 0
	for _, ch := range line {
		switch ch {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}
