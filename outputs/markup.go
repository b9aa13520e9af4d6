package outputs

import (
	"html"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Markdown renders a GitHub-flavored markdown table.
func Markdown(table Table, w *Writer) error {
	grid := tablewriter.NewWriter(w.out())
	grid.SetAutoFormatHeaders(false)
	grid.SetAutoWrapText(false)
	grid.SetReflowDuringAutoWrap(false)
	grid.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	grid.SetCenterSeparator("|")
	grid.SetHeader(table.Columns)
	grid.AppendBulk(formatRows(table.Rows))
	grid.Render()
	return nil
}

// HTML renders an HTML table, values escaped.
func HTML(table Table, w *Writer) error {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, c := range table.Columns {
		b.WriteString("<th>" + html.EscapeString(c) + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range table.Rows {
		b.WriteString("<tr>")
		for _, v := range row {
			b.WriteString("<td>" + html.EscapeString(format(v)) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	_, err := io.WriteString(w.out(), b.String())
	return err
}
