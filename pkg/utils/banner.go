package utils

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintBanner prints the lottogen banner
func PrintBanner(w io.Writer, version string) {
	banner, err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("LOTTO", pterm.NewStyle(pterm.FgLightCyan)),
		pterm.NewLettersFromStringWithStyle("GEN", pterm.NewStyle(pterm.FgLightMagenta)),
	).Srender()
	if err != nil {
		PrintCompactBanner(w, version)
		return
	}

	fmt.Fprint(w, banner)
	fmt.Fprint(w, pterm.DefaultCenter.Sprintf("v%s - Unique Fixed-Width Lottery Numbers\n", version))
	fmt.Fprintln(w)
}

// PrintCompactBanner prints a one-line header
func PrintCompactBanner(w io.Writer, version string) {
	fmt.Fprintln(w, pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Sprintf(" lottogen v%s ", version))
}
