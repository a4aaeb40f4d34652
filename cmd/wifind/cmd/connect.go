package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	wifind "github.com/wifind/wifind/pkg"
	"github.com/wifind/wifind/pkg/system"
	network_connector "github.com/wifind/wifind/pkg/system/network/connector"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to an Access Point.",
	Long: `Connect to an Access Point.
This command requires --ssid and --password flags.

Example:
  wifind connect --ssid home --password hunter2 --interface wlan0`,
	Run: func(cmd *cobra.Command, args []string) {
		if !system.IsRoot() {
			log.Printf("You must be root to connect.")
			os.Exit(exitCodeNotRoot)
		}

		ssid, _ := cmd.Flags().GetString("ssid")
		password, _ := cmd.Flags().GetString("password")
		iface, _ := cmd.Flags().GetString("interface")

		// The wpa_supplicant fallback doesn't need NetworkManager at all.
		if _, err := exec.LookPath("nmcli"); err == nil {
			if err := system.CheckNetworkManagerRunning(cmd.Context()); err != nil {
				log.Printf("Network manager unavailable: %v", err)
				os.Exit(1)
			}
		}

		connector := network_connector.NewNetworkConnector()

		status, err := connector.Connect(wifind.ConnectRequest{
			SSID:      ssid,
			Password:  password,
			Interface: iface,
		})
		if err != nil {
			log.Printf("Failed to connect to %s: %v", ssid, err)
			if status != "" {
				log.Printf("Connection Status: %s", status)
			}
			os.Exit(1)
		}

		fmt.Printf("Connection Status: %s\n", status)
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
	connectCmd.Flags().StringP("ssid", "s", "", "SSID of the wireless network.")
	connectCmd.Flags().StringP("password", "p", "", "Password of the wireless network.")
	connectCmd.Flags().StringP("interface", "i", "wlan0", "Wireless interface to connect through.")
	connectCmd.MarkFlagRequired("ssid")
	connectCmd.MarkFlagRequired("password")
}
