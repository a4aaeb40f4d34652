package utils

import "testing"

func TestPrettyPrintBytes(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tt := range tests {
		if got := PrettyPrintBytes(tt.size); got != tt.want {
			t.Errorf("PrettyPrintBytes(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
