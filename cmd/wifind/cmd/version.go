package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifind/wifind/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get wifind version information",
	Run: func(cmd *cobra.Command, args []string) {
		version := version.GetRelease()

		fmt.Printf("Release: %s\n", version.Release)
		fmt.Printf("Git: %s\n", version.Git.Commit)
		fmt.Printf("Dirty: %t\n", version.Git.Dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
