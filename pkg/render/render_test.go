package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	wifind "github.com/wifind/wifind/pkg"
)

func TestTable(t *testing.T) {
	color.Disable()

	rows := []wifind.ReportRow{
		{Mac: "bb:bb:bb:bb:bb:bb", SSID: "office", Channel: "11", Grade: wifind.GradeWeak, SignalLevel: "-68", Security: "WPA"},
		{IsCurrent: true, Mac: "aa:aa:aa:aa:aa:aa", SSID: "home", Channel: "6", Grade: wifind.GradeExcellent, SignalLevel: "-45", Security: "WPA2"},
	}

	var buf bytes.Buffer
	Table(&buf, rows)
	out := buf.String()

	for _, want := range []string{"home", "office", "-45", "Excellent", "Weak", "WPA2", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Sorted by SSID: home before office.
	if strings.Index(out, "home") > strings.Index(out, "office") {
		t.Errorf("table output not sorted by ssid:\n%s", out)
	}

	// Input slice keeps its scan order.
	if rows[0].SSID != "office" {
		t.Errorf("Table() reordered the caller's rows")
	}
}

func TestTableEmpty(t *testing.T) {
	color.Disable()

	var buf bytes.Buffer
	Table(&buf, nil)

	if !strings.Contains(buf.String(), "SSID") {
		t.Errorf("empty table should still render a header, got:\n%s", buf.String())
	}
}
