package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	network_wifi "github.com/wifind/wifind/pkg/system/network/wifi"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces.",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := network_wifi.WirelessInterfaces()
		if err != nil {
			log.Printf("Failed to list wireless interfaces: %v", err)
			os.Exit(1)
		}

		if len(names) == 0 {
			log.Println("No wireless interfaces found.")
			return
		}

		for _, name := range names {
			log.Printf(" - %s", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
