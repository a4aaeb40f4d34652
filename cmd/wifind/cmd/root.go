package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Distinct exit status for the missing-root precondition, so
// scripts can tell "run me with sudo" apart from a failed scan.
const exitCodeNotRoot = 2

var rootCmd = &cobra.Command{
	Use:   "wifind",
	Short: "wifind scans for wireless networks and connects to them via your network manager",
	Long:  `wifind scans for wireless networks and connects to them via your network manager`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}
