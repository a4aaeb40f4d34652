package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	wifind "github.com/wifind/wifind/pkg"
	"github.com/wifind/wifind/pkg/system"
	network_wifi "github.com/wifind/wifind/pkg/system/network/wifi"
	"github.com/wifind/wifind/pkg/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current wireless association and connectivity.",
	Run: func(cmd *cobra.Command, args []string) {
		links, err := network_wifi.CurrentLinks()
		if err != nil {
			log.Printf("Failed to read wireless link state: %v", err)
			os.Exit(1)
		}

		if len(links) == 0 {
			log.Println("No wireless interfaces found.")
			os.Exit(0)
		}

		names := []string{}
		for _, link := range links {
			names = append(names, link.Interface)
		}

		counters, err := system.GetInterfaceCounters(names)
		if err != nil {
			log.Printf("Failed to read interface counters: %v", err)
		}

		for _, link := range links {
			if !link.Associated {
				log.Printf("%s: not associated", link.Interface)
				continue
			}

			grade := wifind.GradeSignal(float64(link.SignalDBM))
			log.Printf("%s: associated with %s (%s), %d dBm (%s)",
				link.Interface, link.SSID, link.BSSID, link.SignalDBM, grade)

			if stat, ok := counters[link.Interface]; ok {
				log.Printf("  rx %s / %d packets, tx %s / %d packets",
					utils.PrettyPrintBytes(stat.BytesRecv), stat.PacketsRecv,
					utils.PrettyPrintBytes(stat.BytesSent), stat.PacketsSent)
			}
		}

		probe := system.NewConnectivityProbe()
		if err := probe.Check(); err != nil {
			log.Printf("Internet: unreachable (%v)", err)
			os.Exit(1)
		}
		log.Println("Internet: reachable")
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
