package utils

import (
	"io"

	"github.com/pterm/pterm"
)

var (
	// Logger instances
	Info    = pterm.Info
	Success = pterm.Success
	Warning = pterm.Warning
	Error   = pterm.Error
	Debug   = pterm.Debug
)

// InitLogger points the loggers at w and toggles debug output.
// Stdout is left to the drawn numbers.
func InitLogger(debugMode bool, w io.Writer) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}

	Info = *pterm.Info.WithWriter(w)
	Success = *pterm.Success.WithWriter(w)
	Warning = *pterm.Warning.WithWriter(w)
	Error = *pterm.Error.WithWriter(w)
	Debug = *pterm.Debug.WithWriter(w)
}
