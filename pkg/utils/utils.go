package utils

import "fmt"

// PrettyPrintBytes renders a byte count using the largest binary
// unit that keeps the value at or above one.
func PrettyPrintBytes(size uint64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
