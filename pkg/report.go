package wifind

import "strconv"

// ReportRow is one rendered-report entry for a discovered network.
// It keeps both the grade and the raw signal text so the renderer can
// show them side by side.
type ReportRow struct {
	IsCurrent   bool
	Mac         string
	SSID        string
	Channel     string
	Grade       SignalGrade
	SignalLevel string
	Security    string
}

// BuildRow assembles a report row for one discovered network. An
// unparsable signal level is treated as 0.0 rather than an error, so
// row construction never fails.
func BuildRow(network DiscoveredNetwork, snapshot []ActiveConnection) ReportRow {
	signal, err := strconv.ParseFloat(network.SignalLevel, 64)
	if err != nil {
		signal = 0.0
	}

	return ReportRow{
		IsCurrent:   IsConnected(snapshot, network.SSID),
		Mac:         network.Mac,
		SSID:        network.SSID,
		Channel:     network.Channel,
		Grade:       GradeSignal(signal),
		SignalLevel: network.SignalLevel,
		Security:    network.Security,
	}
}

// BuildRows builds a row per network, in input order.
func BuildRows(networks []DiscoveredNetwork, snapshot []ActiveConnection) []ReportRow {
	rows := make([]ReportRow, 0, len(networks))
	for _, network := range networks {
		rows = append(rows, BuildRow(network, snapshot))
	}
	return rows
}
