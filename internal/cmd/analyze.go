package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"iolens/internal/analyzer"
	"iolens/internal/locator"
	"iolens/internal/output"
)

var (
	threshold   float64
	detailed    bool
	limit       int
	extremeOnly bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [patterns...]",
	Short: "Scan iostat dumps for high await times",
	Long: `Scan one or more iostat dump files (or glob patterns) for device rows
whose read or write await time meets the threshold, then print the ranked
outliers, a per-server summary and a severity breakdown.

Examples:
  iolens analyze                            # iostat-*.output in the cwd, >= 100ms
  iolens analyze -t 50                      # entries >= 50ms
  iolens analyze -t 200 -d -l 5             # top 5 entries >= 200ms with details
  iolens analyze -e -d "dumps/**/iostat-*.output"`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64VarP(&threshold, "threshold", "t", analyzer.DefaultThreshold, "await threshold in milliseconds")
	analyzeCmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "show detailed information for each entry")
	analyzeCmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit number of entries shown (0 = all)")
	analyzeCmd.Flags().BoolVarP(&extremeOnly, "extreme-only", "e", false, "show only critical entries (>= 1000ms)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := analyzerOptions(cmd)

	if opts.ExtremeOnly {
		fmt.Fprintln(os.Stderr, "Showing only CRITICAL entries (>= 1000ms)")
	} else {
		fmt.Fprintf(os.Stderr, "Analyzing for await times >= %gms\n", opts.EffectiveThreshold())
	}

	files := locator.Discover(inputPatterns(args))
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No iostat dump files found for the given patterns")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Found %d iostat files to analyze\n", len(files))
	for _, f := range files {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", f.Path)
	}

	report := analyzer.Run(files, opts)
	return newRenderer().Render(report)
}

// analyzerOptions resolves flags against the config file: an explicit flag
// wins, otherwise the configured value applies.
func analyzerOptions(cmd *cobra.Command) analyzer.Options {
	t := threshold
	if !cmd.Flags().Changed("threshold") {
		t = viper.GetFloat64("threshold")
	}
	return analyzer.Options{
		Threshold:   t,
		ExtremeOnly: extremeOnly,
		Limit:       limit,
	}
}

func inputPatterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return viper.GetStringSlice("patterns")
}

func newRenderer() output.Renderer {
	switch strings.ToLower(outputFmt) {
	case "json":
		return output.NewJSONRenderer()
	default:
		return output.NewTextRenderer(detailed)
	}
}
