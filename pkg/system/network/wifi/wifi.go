package network_wifi

import (
	"fmt"

	"github.com/mdlayher/wifi"
	wifind "github.com/wifind/wifind/pkg"
)

func NewWifiScanner() wifind.WifiScanner {
	// TODO: probe for `iw` as an alternative backend on systems
	// without wireless-tools.
	return IWListScanner{}
}

// WirelessInterfaces returns the names of the system's station-mode
// wireless interfaces, in the order the kernel reports them.
func WirelessInterfaces() ([]string, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi client: %v", err)
	}
	defer client.Close()

	interfaces, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %v", err)
	}

	names := []string{}
	for _, iface := range interfaces {
		// P2P devices and monitors show up here as well.
		if iface.Type != wifi.InterfaceTypeStation {
			continue
		}
		names = append(names, iface.Name)
	}

	return names, nil
}

// DefaultInterface picks the first station-mode wireless interface.
func DefaultInterface() (string, error) {
	names, err := WirelessInterfaces()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no wireless interfaces found")
	}
	return names[0], nil
}
