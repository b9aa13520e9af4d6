package outputs

import (
	"io"
	"strings"
)

// List renders each row as its values joined by the column separator, rows
// joined by the row separator. No header.
func List(table Table, w *Writer) error {
	colsep, rowsep := w.Separators()
	lines := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		lines[i] = strings.Join(formatRow(row), colsep)
	}
	_, err := io.WriteString(w.out(), strings.Join(lines, rowsep)+"\n")
	return err
}
