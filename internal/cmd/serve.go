package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"iolens/internal/analyzer"
	"iolens/internal/locator"
	"iolens/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [patterns...]",
	Short: "Run one analysis and serve the report over HTTP",
	Long: `Run a single analysis over the matched iostat dumps, then expose the
finished report as JSON:

  GET /healthz       processing counters
  GET /api/report    full report
  GET /api/hosts     per-host summaries
  GET /api/severity  severity histogram`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "HTTP port (default from config, 8080)")
	serveCmd.Flags().Float64VarP(&threshold, "threshold", "t", analyzer.DefaultThreshold, "await threshold in milliseconds")
	serveCmd.Flags().BoolVarP(&extremeOnly, "extreme-only", "e", false, "serve only critical entries (>= 1000ms)")
	serveCmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit number of ranked entries served (0 = all)")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := analyzerOptions(cmd)

	files := locator.Discover(inputPatterns(args))
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No iostat dump files found for the given patterns")
	}

	report := analyzer.Run(files, opts)

	port := servePort
	if port == "" {
		port = viper.GetString("port")
	}

	fmt.Fprintf(os.Stderr, "Serving report for %d qualifying entries on :%s\n", report.TotalQualifying, port)
	return server.New(report, port).Start()
}
