package system

import (
	"context"
	"fmt"
	"os"

	dbus "github.com/coreos/go-systemd/v22/dbus"
)

/* CAVEAT: scanning and associating both need root. The check
 * lives here rather than in each command so the exit status
 * stays consistent.
 */

// IsRoot reports whether the process runs with an effective uid of 0.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// CheckNetworkManagerRunning asks systemd whether the
// NetworkManager service is active. Reporting connectivity state
// while the manager is down would be stale or wrong, so callers
// are expected to fail fast on an error here.
func CheckNetworkManagerRunning(ctx context.Context) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return fmt.Errorf("could not connect to systemd: %v", err)
	}
	defer conn.Close()

	prop, err := conn.GetUnitPropertyContext(ctx, "NetworkManager.service", "ActiveState")
	if err != nil {
		return fmt.Errorf("could not query NetworkManager.service: %v", err)
	}

	state, ok := prop.Value.Value().(string)
	if !ok || state != "active" {
		return fmt.Errorf("NetworkManager.service is not active (state: %v)", prop.Value.Value())
	}

	return nil
}
