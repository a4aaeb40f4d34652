package network_connector

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	wifind "github.com/wifind/wifind/pkg"
)

var _ wifind.NetworkConnector = &NetworkConnectorNMCli{}

type NetworkConnectorNMCli struct{}

func (t NetworkConnectorNMCli) Connect(req wifind.ConnectRequest) (string, error) {
	logrus.Debugf("connecting to %s via nmcli on %s", req.SSID, req.Interface)

	cmd := exec.Command("nmcli", "dev", "wifi", "connect", req.SSID,
		"password", req.Password,
		"ifname", req.Interface,
	)

	out, err := cmd.CombinedOutput()
	status := strings.TrimSpace(string(out))
	if err != nil {
		if status == "" {
			status = err.Error()
		}
		return status, fmt.Errorf("nmcli connect failed: %v", err)
	}

	return status, nil
}
