package outputs

import (
	"github.com/olekukonko/tablewriter"
)

// SQL renders the default bordered grid. Column widths come from the widest
// value, which is why the whole result set is fetched before rendering.
func SQL(table Table, w *Writer) error {
	grid := tablewriter.NewWriter(w.out())
	grid.SetAutoFormatHeaders(false)
	grid.SetAutoWrapText(false)
	grid.SetReflowDuringAutoWrap(false)
	grid.SetHeader(table.Columns)
	grid.AppendBulk(formatRows(table.Rows))
	grid.Render()
	return nil
}
