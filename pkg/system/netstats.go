package system

import (
	"fmt"

	gopsutilnet "github.com/shirou/gopsutil/v4/net"
)

// InterfaceCounters holds lifetime traffic counters for one
// network interface.
type InterfaceCounters struct {
	Interface   string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// GetInterfaceCounters returns traffic counters for the named
// interfaces, keyed by interface name. Unknown names are simply
// absent from the result.
func GetInterfaceCounters(names []string) (map[string]InterfaceCounters, error) {
	stats, err := gopsutilnet.IOCounters(true)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface counters: %v", err)
	}

	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}

	out := map[string]InterfaceCounters{}
	for _, stat := range stats {
		if !wanted[stat.Name] {
			continue
		}
		out[stat.Name] = InterfaceCounters{
			Interface:   stat.Name,
			BytesSent:   stat.BytesSent,
			BytesRecv:   stat.BytesRecv,
			PacketsSent: stat.PacketsSent,
			PacketsRecv: stat.PacketsRecv,
		}
	}

	return out, nil
}
