package outputs

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Line renders one "column = value" line per column, column names right
// aligned to the widest of the result set, with a blank line between rows.
func Line(table Table, w *Writer) error {
	maxWidth := 0
	for _, c := range table.Columns {
		if width := tablewriter.DisplayWidth(c); width > maxWidth {
			maxWidth = width
		}
	}

	records := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		keys, values := pairs(table.Columns, row)
		lines := make([]string, len(keys))
		for j, key := range keys {
			lines[j] = tablewriter.PadLeft(key, " ", maxWidth) + " = " + format(values[j])
		}
		records[i] = strings.Join(lines, "\n")
	}

	_, err := io.WriteString(w.out(), strings.Join(records, "\n\n")+"\n")
	return err
}
