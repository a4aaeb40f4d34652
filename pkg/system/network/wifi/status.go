package network_wifi

import (
	"fmt"

	"github.com/mdlayher/wifi"
)

// LinkStatus describes the current association of one wireless
// interface. Associated is false for an interface that is up but
// not joined to any BSS.
type LinkStatus struct {
	Interface  string
	SSID       string
	BSSID      string
	SignalDBM  int
	Associated bool
}

// CurrentLinks queries nl80211 for the association state of every
// station-mode interface.
func CurrentLinks() ([]LinkStatus, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi client: %v", err)
	}
	defer client.Close()

	interfaces, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %v", err)
	}

	links := []LinkStatus{}

	for _, iface := range interfaces {
		if iface.Type != wifi.InterfaceTypeStation {
			continue
		}

		link := LinkStatus{Interface: iface.Name}

		// BSS returns an error for an unassociated interface.
		bss, err := client.BSS(iface)
		if err == nil && bss.Status == wifi.BSSStatusAssociated {
			link.Associated = true
			link.SSID = bss.SSID
			link.BSSID = bss.BSSID.String()

			stations, err := client.StationInfo(iface)
			if err == nil && len(stations) > 0 {
				link.SignalDBM = stations[0].Signal
			}
		}

		links = append(links, link)
	}

	return links, nil
}
