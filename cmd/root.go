package cmd

import (
	"os"

	"lottogen/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "lottogen [count]",
	Short: "Unique lottery number generator",
	Long: `lottogen draws distinct fixed-width lottery numbers and prints them sorted.

Numbers are packed into rows sized to the terminal. When the output is not a
terminal (pipes, files) every number goes on its own line:
  lottogen 8 -n 3
  lottogen 5 -n 12 --single-column | sort -r`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(verbose, cmd.ErrOrStderr())
		if verbose {
			utils.PrintBanner(cmd.ErrOrStderr(), version)
		}
	},
	RunE: runDraw,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+utils.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and banner on stderr")
}
