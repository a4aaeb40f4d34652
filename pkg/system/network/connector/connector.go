package network_connector

import (
	"os/exec"

	"github.com/sirupsen/logrus"
	wifind "github.com/wifind/wifind/pkg"
)

// NewNetworkConnector picks the association backend: nmcli when
// NetworkManager's CLI is installed, a raw wpa_supplicant/wpa_cli
// sequence otherwise.
func NewNetworkConnector() wifind.NetworkConnector {
	if _, err := exec.LookPath("nmcli"); err == nil {
		return NetworkConnectorNMCli{}
	}

	logrus.Debug("nmcli not found, falling back to wpa_supplicant")
	return NetworkConnectorWPASupplicant{}
}
