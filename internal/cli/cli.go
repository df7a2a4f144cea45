// Package cli wires configuration, logging, the chosen presenter and the
// session engine into the sdjquiz command.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run executes the command and returns its exit code. The only accepted
// arguments are -h and --help.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		if len(args) == 1 && isHelpArg(args[0]) {
			printUsage(stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "Unexpected argument: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	return runPlay(stdin, stdout, stderr)
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  sdjquiz")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Plays a multiple-choice quiz loaded from a YAML or JSON file.")
	fmt.Fprintln(w, "The quiz file and the number of questions are asked interactively.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SDJQUIZ_UI         auto|live|plain (default auto)")
	fmt.Fprintln(w, "  SDJQUIZ_NO_COLOR   disable colors (NO_COLOR is honoured too)")
	fmt.Fprintln(w, "  SDJQUIZ_SEED       fixed shuffle seed (0 picks a random one)")
	fmt.Fprintln(w, "  SDJQUIZ_LOG_FILE   append JSON logs to this file")
	fmt.Fprintln(w, "  SDJQUIZ_LOG_LEVEL  debug|info|warn|error (default info)")
}
