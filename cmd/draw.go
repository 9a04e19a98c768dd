package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"lottogen/pkg/layout"
	"lottogen/pkg/reporter"
	"lottogen/pkg/sampler"
	"lottogen/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	rootCmd.Flags().IntP("n-digits", "n", 6, "Number of lottery digits (1-19)")
	rootCmd.Flags().Int("columns", 0, "Layout width in columns (0 = detect terminal)")
	rootCmd.Flags().Bool("single-column", false, "Print one number per line")
	rootCmd.Flags().Uint64("seed", 0, "Seed for a reproducible draw (0 = random)")
	rootCmd.Flags().Uint64("max-draws", 0, "Give up after this many random draws (0 = unbounded)")
	rootCmd.Flags().Int("dense-threshold", sampler.DefaultDenseThreshold, "Largest digit width sampled by full enumeration")
	rootCmd.Flags().StringP("output", "o", "", "Write a draw report to this file")
	rootCmd.Flags().String("format", "json", "Report format: json, markdown")
	rootCmd.Flags().Bool("stats", false, "Print draw statistics to stderr")
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), cfg)

	if len(args) == 1 {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", sampler.ErrInvalidCount, args[0])
		}
		cfg.Draw.Count = count
	}
	if cfg.Draw.Count < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", sampler.ErrInvalidCount, cfg.Draw.Count)
	}

	// An explicit --format wins over the report file extension.
	if cfg.Output.Report != "" && !cmd.Flags().Changed("format") {
		if f, ok := reporter.FormatForPath(cfg.Output.Report); ok {
			cfg.Output.Format = string(f)
		}
	}

	return executeDraw(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, resolveColumns(cmd.OutOrStdout(), cfg))
}

// executeDraw samples, prints and optionally reports one draw.
// columns <= 0 selects the one-per-line layout.
func executeDraw(out, errOut io.Writer, cfg *utils.Config, columns int) error {
	var rep *reporter.Reporter
	if cfg.Output.Report != "" {
		format, err := reporter.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		rep = reporter.NewReporter(format)
	}

	opts := []sampler.Option{
		sampler.WithDenseThreshold(cfg.Draw.DenseThreshold),
		sampler.WithMaxDraws(cfg.Draw.MaxDraws),
	}
	if cfg.Draw.Seed != 0 {
		opts = append(opts, sampler.WithSeed(cfg.Draw.Seed))
	}

	utils.Debug.Printf("Drawing %d numbers of %d digits\n", cfg.Draw.Count, cfg.Draw.Digits)
	draw, err := sampler.New(opts...).Draw(cfg.Draw.Digits, cfg.Draw.Count)
	if err != nil {
		return err
	}
	utils.Debug.Println(draw.Stats.Summary())

	if columns > 0 {
		utils.Debug.Printf("Layout: %d columns, %d per line\n", columns, layout.ItemsPerLine(columns, draw.Digits))
	}
	if _, err := fmt.Fprintln(out, layout.Format(draw.Numbers, draw.Digits, columns)); err != nil {
		return err
	}

	if cfg.Output.Stats {
		if err := draw.Stats.Print(errOut); err != nil {
			utils.Warning.Printf("Failed to print statistics: %v\n", err)
		}
	}

	if rep != nil {
		report, err := rep.GenerateReport(cfg.Output.Report, draw)
		if err != nil {
			return err
		}
		utils.Success.Printf("Report %s saved to %s\n", report.ID, cfg.Output.Report)
	}
	return nil
}

// loadConfig reads the config file and environment. Debug logging is switched
// on as soon as the file asks for it so the load itself is logged.
func loadConfig(logOut io.Writer) (*utils.Config, error) {
	path := cfgFile
	if path == "" && utils.FileExists(utils.DefaultConfigFile) {
		path = utils.DefaultConfigFile
	}

	cfg := utils.DefaultConfig()
	if path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.Output.Verbose && !verbose {
			utils.InitLogger(true, logOut)
		}
		utils.Debug.Printf("Loaded config from %s\n", path)
	}

	if err := utils.ApplyEnv(cfg); err != nil {
		utils.Warning.Printf("%v, keeping configured values\n", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(fs *pflag.FlagSet, cfg *utils.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "n-digits":
			cfg.Draw.Digits, _ = fs.GetInt(f.Name)
		case "columns":
			cfg.Output.Columns, _ = fs.GetInt(f.Name)
		case "single-column":
			cfg.Output.SingleColumn, _ = fs.GetBool(f.Name)
		case "seed":
			cfg.Draw.Seed, _ = fs.GetUint64(f.Name)
		case "max-draws":
			cfg.Draw.MaxDraws, _ = fs.GetUint64(f.Name)
		case "dense-threshold":
			cfg.Draw.DenseThreshold, _ = fs.GetInt(f.Name)
		case "output":
			cfg.Output.Report, _ = fs.GetString(f.Name)
		case "format":
			cfg.Output.Format, _ = fs.GetString(f.Name)
		case "stats":
			cfg.Output.Stats, _ = fs.GetBool(f.Name)
		}
	})
}

// resolveColumns returns the layout width: forced single column, a configured
// width, or the width of out when it is a terminal.
func resolveColumns(out io.Writer, cfg *utils.Config) int {
	if cfg.Output.SingleColumn {
		return 0
	}
	if cfg.Output.Columns > 0 {
		return cfg.Output.Columns
	}

	f, ok := out.(*os.File)
	if !ok {
		return 0
	}
	columns, ok := utils.TerminalWidth(f)
	if !ok {
		utils.Debug.Println("Output is not a terminal, printing one number per line")
		return 0
	}
	return columns
}
