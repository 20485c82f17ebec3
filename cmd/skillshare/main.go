package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getskill/skillshare/pkg/discovery"
	"github.com/getskill/skillshare/pkg/logger"
	"github.com/getskill/skillshare/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "skillshare",
	Short: "Manage a collection of skills for AI coding assistants",
	Long: `skillshare maintains a collection of skills: markdown documents of
instructional guidance (SKILL.md) paired with skill.yaml metadata sidecars.

It lints the collection against its conventions, browses and searches
skills, scaffolds new ones, and installs them into the configuration
directories of consuming tools.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level '%s', using default", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		if logFile := viper.GetString("log_file"); logFile != "" {
			logger.SetLogFile(logFile)
		}
		presenter.SetQuiet(viper.GetBool("quiet"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLSHARE")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillshare")
	viper.AddConfigPath(".skillshare")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

// newDiscovery builds a Discovery honoring the --root flag; without it
// the default roots apply (./skills plus installed locations)
func newDiscovery() (*discovery.Discovery, error) {
	if root := viper.GetString("root"); root != "" {
		return discovery.New(discovery.WithRoots(root))
	}
	return discovery.New()
}

func main() {
	rootCmd.PersistentFlags().String("root", "", "Collection root to read skills from (overrides default locations)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
