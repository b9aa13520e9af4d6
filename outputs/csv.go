package outputs

import (
	"encoding/csv"
)

// CSV writes a header line then one RFC 4180 record per row.
func CSV(table Table, w *Writer) error {
	return writeDelimited(table, w, ',')
}

// TSV is CSV with tabs.
func TSV(table Table, w *Writer) error {
	return writeDelimited(table, w, '\t')
}

func writeDelimited(table Table, w *Writer, comma rune) error {
	out := csv.NewWriter(w.out())
	out.Comma = comma
	if err := out.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		values := formatRow(row)
		for i, v := range row {
			// an empty field reads better than NULL in a spreadsheet
			if v == nil {
				values[i] = ""
			}
		}
		if err := out.Write(values); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
