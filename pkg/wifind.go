package wifind

// see ./system/ for implementations

// Scans for nearby wireless networks on a given
// interface, by driving an external scan utility.
type WifiScanner interface {
	Scan(interfaceName string) ([]DiscoveredNetwork, error)
}

// Returns the network manager's current view of which
// networks are active, newest entry first.
type ActiveConnectionSource interface {
	ActiveConnections() ([]ActiveConnection, error)
}

// Associates with an access point via an external facility
// and returns a human-readable status string.
type NetworkConnector interface {
	Connect(req ConnectRequest) (string, error)
}

// DiscoveredNetwork is a single access point as reported by a scan.
// SignalLevel stays a string: scan utilities emit it as text and a
// bad value must never fail a scan, so parsing is deferred to report
// building where a parse failure falls back to 0.0.
type DiscoveredNetwork struct {
	Mac         string
	SSID        string
	Channel     string
	SignalLevel string
	Security    string
}

// ActiveConnection is one entry of the network manager's
// active-connection snapshot.
type ActiveConnection struct {
	Active bool
	SSID   string
}

type ConnectRequest struct {
	SSID      string
	Password  string
	Interface string
}
