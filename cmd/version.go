package cmd

import (
	"fmt"
	"runtime"

	"lottogen/pkg/sampler"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, pterm.DefaultHeader.
			WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
			Sprintf(" lottogen v%s ", version))

		tableData := pterm.TableData{
			{"Property", "Value"},
			{"Version", version},
			{"Digit Range", fmt.Sprintf("%d-%d", sampler.MinDigits, sampler.MaxDigits)},
			{"Go Version", runtime.Version()},
			{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
			{"Compiler", runtime.Compiler},
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
