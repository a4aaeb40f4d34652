package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	wifind "github.com/wifind/wifind/pkg"
	"github.com/wifind/wifind/pkg/render"
	"github.com/wifind/wifind/pkg/system"
	"github.com/wifind/wifind/pkg/system/network"
	network_wifi "github.com/wifind/wifind/pkg/system/network/wifi"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for nearby wireless networks.",
	Run: func(cmd *cobra.Command, args []string) {
		if !system.IsRoot() {
			log.Printf("You must be root to scan.")
			os.Exit(exitCodeNotRoot)
		}

		if err := system.CheckNetworkManagerRunning(cmd.Context()); err != nil {
			log.Printf("Network manager unavailable: %v", err)
			os.Exit(1)
		}

		nmcli, err := network.NewNMCli()
		if err != nil {
			log.Printf("Failed to find nmcli: %v", err)
			os.Exit(1)
		}

		if err := nmcli.CheckMinimumVersion(); err != nil {
			log.Printf("Unsupported nmcli: %v", err)
			os.Exit(1)
		}

		iface, _ := cmd.Flags().GetString("interface")
		if iface == "" {
			iface, err = network_wifi.DefaultInterface()
			if err != nil {
				log.Printf("Failed to pick a wireless interface: %v", err)
				os.Exit(1)
			}
		}

		scanner := network_wifi.NewWifiScanner()
		networks, err := scanner.Scan(iface)
		if err != nil {
			log.Printf("Failed to scan on %s: %v", iface, err)
			os.Exit(1)
		}

		snapshot, err := nmcli.ActiveConnections()
		if err != nil {
			log.Printf("Failed to query active connections: %v", err)
			os.Exit(1)
		}

		rows := wifind.BuildRows(networks, snapshot)
		render.Table(os.Stdout, rows)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("interface", "i", "", "Wireless interface to scan (default: first wireless interface).")
}
