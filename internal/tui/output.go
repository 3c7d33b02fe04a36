package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the demo is presented.
type OutputMode int

const (
	// OutputModePlain prints a static, unstyled snapshot.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a static snapshot with colors.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// Fallback terminal dimensions when the size cannot be queried.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode from flags and the terminal.
// Interactive mode needs both stdin and stdout to be terminals.
func DetectOutputMode(forcePlain, noColor, noTUI bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if noTUI || !isTerminal(os.Stdin) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalSize returns the size of stdout, or defaults when it is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
