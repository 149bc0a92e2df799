package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"iolens/internal/analyzer"
	"iolens/internal/locator"
)

var (
	cfgFile   string
	outputFmt string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "iolens",
	Short: "iolens — iostat latency outlier analyzer",
	Long: `iolens is an offline diagnostic analyzer for iostat dumps collected
across a cluster. It parses per-device read/write await times, classifies
each observation by severity, and surfaces the worst latency outliers per
host, per file and per tier.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.iolens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".iolens")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("threshold", analyzer.DefaultThreshold)
	viper.SetDefault("patterns", []string{locator.DefaultPattern})
	viper.SetDefault("port", "8080")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
