package render

import (
	"io"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	wifind "github.com/wifind/wifind/pkg"
)

// gradeStyles is the one place a grade maps to its terminal styling.
var gradeStyles = map[wifind.SignalGrade]color.Style{
	wifind.GradeMaximum:    {color.FgGreen, color.OpBold},
	wifind.GradeExcellent:  {color.FgGreen, color.OpBold},
	wifind.GradeGood:       {color.FgGreen},
	wifind.GradeReliable:   {color.FgYellow, color.OpBold},
	wifind.GradeWeak:       {color.FgYellow},
	wifind.GradeUnreliable: {color.FgRed},
	wifind.GradeBad:        {color.FgRed, color.OpBold},
}

var (
	currentStyle = color.Style{color.FgGreen, color.OpBold}
	ssidStyle    = color.Style{color.FgYellow, color.OpBold}
)

// Table renders report rows as a network table, sorted by SSID with
// the currently connected network starred. Rows are copied before
// sorting so the caller's slice keeps its scan order.
func Table(w io.Writer, rows []wifind.ReportRow) {
	sorted := make([]wifind.ReportRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SSID < sorted[j].SSID
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "MAC", "SSID", "Channel", "Signal", "Grade", "Security"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, row := range sorted {
		star := ""
		if row.IsCurrent {
			star = currentStyle.Sprint("*")
		}

		table.Append([]string{
			star,
			row.Mac,
			ssidStyle.Sprint(row.SSID),
			row.Channel,
			row.SignalLevel,
			gradeStyles[row.Grade].Sprint(row.Grade.String()),
			row.Security,
		})
	}

	table.Render()
}
