package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/quipdev/quip/config"
	"github.com/quipdev/quip/llm"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes quip in the current directory, writing .quip/config.yaml.",
	Run:   Init,
}

// verbosityUnset is the survey choice that leaves model_verbosity out of the
// config file, so supported models fall back to the default.
const verbosityUnset = "unset (defaults to medium)"

// Init is the cobra handler for `quip init`.
func Init(_ *cobra.Command, _ []string) {
	cfg := config.Default()

	if err := survey.AskOne(&survey.Select{
		Message: "Which provider should quip use?",
		Options: llm.SupportedProviders(),
		Default: cfg.Provider,
	}, &cfg.Provider); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Which model should quip use?",
		Options: llm.SuggestedModels(),
		Default: cfg.Model,
	}, &cfg.Model); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var verbosityChoice string
	if err := survey.AskOne(&survey.Select{
		Message: "Response verbosity (only honored by gpt-5 family models):",
		Options: []string{verbosityUnset, "low", "medium", "high"},
		Default: verbosityUnset,
	}, &verbosityChoice); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if verbosityChoice != verbosityUnset {
		v, err := config.ParseVerbosity(verbosityChoice)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cfg.ModelVerbosity = &v
	}

	if err := config.Save(".", cfg); err != nil {
		fmt.Printf("Error writing configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Configuration written to .quip/config.yaml.")
}
