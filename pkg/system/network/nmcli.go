package network

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/sirupsen/logrus"
	wifind "github.com/wifind/wifind/pkg"
)

// `dev wifi` with terse field selection behaves consistently from
// this release onwards.
var minimumNMCliVersion = semver.MustParse("0.9.10")

var _ wifind.ActiveConnectionSource = &NMCli{}

// NMCli queries the system's NetworkManager via its command line
// tool. It owns no state beyond the resolved binary path.
type NMCli struct {
	path string
}

func NewNMCli() (*NMCli, error) {
	path, err := exec.LookPath("nmcli")
	if err != nil {
		return nil, fmt.Errorf("nmcli not found in PATH: %v", err)
	}
	return &NMCli{path: path}, nil
}

// ActiveConnections returns NetworkManager's view of known wifi
// networks, active connection first.
func (n *NMCli) ActiveConnections() ([]wifind.ActiveConnection, error) {
	cmd := exec.Command(n.path, "-t", "-f", "active,ssid", "dev", "wifi")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to query active connections: %v", err)
	}

	snapshot := wifind.ParseActiveLines(out.String())
	logrus.Debugf("nmcli reported %d known networks", len(snapshot))
	return snapshot, nil
}

// Version reports the installed nmcli version.
func (n *NMCli) Version() (*semver.Version, error) {
	out, err := exec.Command(n.path, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run nmcli --version: %v", err)
	}
	return parseNMCliVersion(string(out))
}

// CheckMinimumVersion fails when the installed nmcli is too old for
// the terse output format this tool parses.
func (n *NMCli) CheckMinimumVersion() error {
	version, err := n.Version()
	if err != nil {
		return err
	}
	return checkVersionSupported(version)
}

// checkVersionSupported compares against the minimum directly rather
// than through a constraint: constraint checks refuse any version
// carrying a prerelease segment, and distro builds like 1.36.0-2
// parse as prereleases.
func checkVersionSupported(version *semver.Version) error {
	if version.Compare(minimumNMCliVersion) < 0 {
		return fmt.Errorf("nmcli %s is too old, need >= %s", version.Original(), minimumNMCliVersion)
	}

	logrus.Debugf("nmcli version %s ok", version.Original())
	return nil
}

// parseNMCliVersion extracts the version from output of the form
// "nmcli tool, version 1.42.4".
func parseNMCliVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty nmcli --version output")
	}

	version, err := semver.NewVersion(fields[len(fields)-1])
	if err != nil {
		return nil, fmt.Errorf("unrecognised nmcli --version output %q: %v", output, err)
	}
	return version, nil
}
