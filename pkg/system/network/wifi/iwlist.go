package network_wifi

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	wifind "github.com/wifind/wifind/pkg"
)

var _ wifind.WifiScanner = &IWListScanner{}

type IWListScanner struct{}

func (s IWListScanner) Scan(interfaceName string) ([]wifind.DiscoveredNetwork, error) {
	cmd := exec.Command("iwlist", interfaceName, "scan")
	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("iwlist scan on %s failed: %v", interfaceName, err)
	}

	return parseIWListOutput(out.String()), nil
}

var (
	ssidRegex       = regexp.MustCompile(`ESSID:"(.*?)"`)
	addressRegex    = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	channelRegex    = regexp.MustCompile(`Channel:(\d+)`)
	signalRegex     = regexp.MustCompile(`Signal level=(-?\d+(?:\.\d+)?) dBm`)
	encryptionRegex = regexp.MustCompile(`Encryption key:(on|off)`)
	wpa2Regex       = regexp.MustCompile(`IE: IEEE 802.11i/WPA2 Version`)
	wpa1Regex       = regexp.MustCompile(`IE: WPA Version 1`)
)

func parseIWListOutput(output string) []wifind.DiscoveredNetwork {
	var networks []wifind.DiscoveredNetwork
	cells := strings.Split(output, "Cell ")

	for _, cell := range cells {
		address := addressRegex.FindStringSubmatch(cell)
		if len(address) < 2 {
			continue
		}

		network := wifind.DiscoveredNetwork{
			Mac:      address[1],
			Security: securityType(cell),
		}

		if ssid := ssidRegex.FindStringSubmatch(cell); len(ssid) > 1 {
			network.SSID = ssid[1]
		}
		if channel := channelRegex.FindStringSubmatch(cell); len(channel) > 1 {
			network.Channel = channel[1]
		}
		if signal := signalRegex.FindStringSubmatch(cell); len(signal) > 1 {
			network.SignalLevel = signal[1]
		}

		networks = append(networks, network)
	}

	return networks
}

func securityType(cell string) string {
	encryption := encryptionRegex.FindStringSubmatch(cell)
	if len(encryption) < 2 || encryption[1] != "on" {
		return "Open"
	}

	if wpa2Regex.MatchString(cell) {
		return "WPA2"
	}
	if wpa1Regex.MatchString(cell) {
		return "WPA"
	}
	return "WEP"
}
