package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the quip CLI version.",
	Run:   Version,
}

// Version is the cobra handler for `quip version`.
func Version(_ *cobra.Command, _ []string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		fmt.Println("unknown")
		return
	}
	fmt.Println(info.Main.Version)
}
