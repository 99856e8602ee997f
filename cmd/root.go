package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quipdev/quip/cmd/template"
	"github.com/quipdev/quip/config"
	"github.com/quipdev/quip/logging"
)

var logLevel string
var debugLogging bool

var rootCmd = &cobra.Command{
	Use:   "quip",
	Short: "quip is a CLI tool that answers questions about your project using an LLM",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if logLevel == "" {
			logLevel = cfg.Logging.Level
		}

		if logLevel == "" {
			logLevel = "info"
		}

		if err := logging.Init(logLevel); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		logging.SetRequestResponseDebug(debugLogging || cfg.Logging.RequestResponseDebug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print usage.
		fmt.Println(cmd.UsageString())
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (e.g. debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable request/response debug logging")
	if err := template.Register(rootCmd); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
