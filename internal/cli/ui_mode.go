package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"sdjquiz/internal/config"
)

// uiModeDecision records which presenter to build and why.
type uiModeDecision struct {
	useLive bool
	warning string
}

// mode names the presenter the decision selects.
func (d uiModeDecision) mode() string {
	if d.useLive {
		return config.UILive
	}
	return config.UIPlain
}

// isTerminal reports whether a writer is a TTY. Tests swap it out.
var isTerminal = writerIsTerminal

// resolveUIMode maps the configured ui setting onto a presenter. The live
// presenter needs a TTY on stdout; without one it degrades to plain output.
func resolveUIMode(setting string, stdout io.Writer) (uiModeDecision, error) {
	mode := strings.ToLower(strings.TrimSpace(setting))
	tty := isTerminal(stdout)
	switch mode {
	case "", config.UIAuto:
		return uiModeDecision{useLive: tty}, nil
	case config.UIPlain:
		return uiModeDecision{}, nil
	case config.UILive:
		if tty {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain output."}, nil
	}
	return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", setting)
}

func writerIsTerminal(w io.Writer) bool {
	switch typed := w.(type) {
	case *os.File:
		return term.IsTerminal(int(typed.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(typed.Fd()))
	}
	return false
}
