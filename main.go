package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// sessionLogger returns a logger writing to the file named by QTERMREG_LOG,
// or a no-op logger when unset. Stdout belongs to the TUI.
func sessionLogger() zerolog.Logger {
	path := os.Getenv("QTERMREG_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qtermreg: cannot open log file: %v\n", err)
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func main() {
	p := tea.NewProgram(initialModel(sessionLogger()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "qtermreg: %v\n", err)
		os.Exit(1)
	}
}
