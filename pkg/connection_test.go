package wifind

import (
	"reflect"
	"testing"
)

func TestParseActiveLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []ActiveConnection
	}{
		{
			name: "empty output",
			raw:  "",
			want: nil,
		},
		{
			name: "single active network",
			raw:  "yes:home\n",
			want: []ActiveConnection{{Active: true, SSID: "home"}},
		},
		{
			name: "active first then known networks",
			raw:  "yes:home\nno:office\nno:cafe\n",
			want: []ActiveConnection{
				{Active: true, SSID: "home"},
				{Active: false, SSID: "office"},
				{Active: false, SSID: "cafe"},
			},
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  yes:home  \n",
			want: []ActiveConnection{{Active: true, SSID: "home"}},
		},
		{
			name: "ssid containing a colon keeps its tail",
			raw:  "yes:cafe:guest\n",
			want: []ActiveConnection{{Active: true, SSID: "cafe:guest"}},
		},
		{
			name: "escaped colon in ssid is unescaped",
			raw:  `yes:cafe\:guest` + "\n",
			want: []ActiveConnection{{Active: true, SSID: "cafe:guest"}},
		},
		{
			name: "escaped backslash in ssid is unescaped",
			raw:  `no:back\\slash` + "\n",
			want: []ActiveConnection{{Active: false, SSID: `back\slash`}},
		},
		{
			name: "line without a separator is an inactive empty entry",
			raw:  "yes\n",
			want: []ActiveConnection{{}},
		},
		{
			name: "blank lines are skipped",
			raw:  "\n\nno:home\n\n",
			want: []ActiveConnection{{Active: false, SSID: "home"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseActiveLines(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseActiveLines(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsConnected(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []ActiveConnection
		target   string
		want     bool
	}{
		{
			name:     "empty snapshot",
			snapshot: nil,
			target:   "home",
			want:     false,
		},
		{
			name:     "first entry inactive",
			snapshot: []ActiveConnection{{Active: false, SSID: "home"}},
			target:   "home",
			want:     false,
		},
		{
			name:     "first entry active and matching",
			snapshot: []ActiveConnection{{Active: true, SSID: "home"}},
			target:   "home",
			want:     true,
		},
		{
			name:     "first entry active but different ssid",
			snapshot: []ActiveConnection{{Active: true, SSID: "office"}},
			target:   "home",
			want:     false,
		},
		{
			name: "match beyond the first entry is ignored",
			snapshot: []ActiveConnection{
				{Active: false, SSID: "office"},
				{Active: true, SSID: "home"},
			},
			target: "home",
			want:   false,
		},
		{
			name:     "ssid comparison is case sensitive",
			snapshot: []ActiveConnection{{Active: true, SSID: "Home"}},
			target:   "home",
			want:     false,
		},
		{
			name:     "escaped colon in manager output matches scanned ssid",
			snapshot: ParseActiveLines(`yes:cafe\:guest`),
			target:   "cafe:guest",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnected(tt.snapshot, tt.target); got != tt.want {
				t.Errorf("IsConnected(%+v, %q) = %v, want %v", tt.snapshot, tt.target, got, tt.want)
			}
		})
	}
}
