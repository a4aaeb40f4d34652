package network_connector

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	wifind "github.com/wifind/wifind/pkg"
)

// wpa_supplicant needs a moment to run the four-way handshake and
// DHCP before its status is meaningful.
const associationSettleTime = 20 * time.Second

var _ wifind.NetworkConnector = &NetworkConnectorWPASupplicant{}

type NetworkConnectorWPASupplicant struct{}

func (t NetworkConnectorWPASupplicant) Connect(req wifind.ConnectRequest) (string, error) {
	// Prepare wpa_supplicant command with network information
	cmd := exec.Command("wpa_supplicant",
		"-i", req.Interface,
		"-c", "/dev/null",
		"-C", "/var/run/wpa_supplicant",
		"-B",
		"-o", "/var/log/wpa_supplicant.log",
		"-D", "nl80211,wext",
	)

	cmd.Env = append(cmd.Env,
		"WPA_CTRL_INTERFACE=/var/run/wpa_supplicant",
		"WPA_CTRL_INTERFACE_GROUP=0",
	)

	err := cmd.Start()
	if err != nil {
		return "", fmt.Errorf("failed to start wpa_supplicant for interface %s: %v", req.Interface, err)
	}

	logrus.Debugf("started wpa_supplicant for interface: %s", req.Interface)

	// Use wpa_cli to add and connect to the network
	addNetworkCmd := exec.Command("wpa_cli", "-i", req.Interface, "add_network")
	networkID, err := addNetworkCmd.CombinedOutput()
	if err != nil {
		logrus.Debugf("add_network output: %s", networkID)
		return "", fmt.Errorf("failed to add network: %v", err)
	}

	id := strings.TrimSpace(string(networkID))

	setSSIDCmd := exec.Command("wpa_cli", "-i", req.Interface, "set_network", id, "ssid", fmt.Sprintf("\"%s\"", req.SSID))
	if err := setSSIDCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to set SSID: %v", err)
	}

	setPSKCmd := exec.Command("wpa_cli", "-i", req.Interface, "set_network", id, "psk", fmt.Sprintf("\"%s\"", req.Password))
	if err := setPSKCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to set PSK: %v", err)
	}

	enableNetworkCmd := exec.Command("wpa_cli", "-i", req.Interface, "enable_network", id)
	if err := enableNetworkCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to enable network: %v", err)
	}

	logrus.Debugf("attempting to connect to wifi network: %s", req.SSID)

	time.Sleep(associationSettleTime)

	statusCmd := exec.Command("wpa_cli", "-i", req.Interface, "status")
	statusOutput, err := statusCmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get connection status: %v", err)
	}

	status := string(statusOutput)

	if strings.Contains(status, "wpa_state=COMPLETED") {
		return fmt.Sprintf("connected to %s", req.SSID), nil
	}

	return fmt.Sprintf("association with %s not completed", req.SSID), nil
}
