package wifind

import "strings"

// ParseActiveLines parses the network manager's terse active/ssid
// output, one `yes:ssid` or `no:ssid` record per line. Blank lines
// are skipped; a line without a separator becomes an inactive entry
// with an empty SSID. The active field never contains a colon, so
// splitting on the first one is safe even for escaped SSIDs.
func ParseActiveLines(raw string) []ActiveConnection {
	var snapshot []ActiveConnection

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		active, ssid, found := strings.Cut(line, ":")
		if !found {
			snapshot = append(snapshot, ActiveConnection{})
			continue
		}

		snapshot = append(snapshot, ActiveConnection{
			Active: active == "yes",
			SSID:   unescapeTerse(ssid),
		})
	}

	return snapshot
}

// unescapeTerse undoes the backslash escaping the network manager's
// terse mode applies to separators inside field values, so an SSID
// arriving as `cafe\:guest` compares equal to the scanned `cafe:guest`.
func unescapeTerse(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}

	// A trailing lone backslash escapes nothing.
	if escaped {
		b.WriteRune('\\')
	}

	return b.String()
}

// IsConnected reports whether target is the currently associated
// network. Only the first snapshot entry is consulted: the network
// manager lists the active connection first, so a single comparison
// answers the question. An empty snapshot means no active connection.
func IsConnected(snapshot []ActiveConnection, target string) bool {
	if len(snapshot) == 0 {
		return false
	}

	first := snapshot[0]
	return first.Active && first.SSID == target
}
