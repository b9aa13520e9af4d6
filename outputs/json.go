package outputs

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// JSON writes one object per row, keyed by column name in column order,
// separated by a comma and a newline and wrapped in [ ].
func JSON(table Table, w *Writer) error {
	var out bytes.Buffer
	out.WriteByte('[')
	for i, row := range table.Rows {
		if i > 0 {
			out.WriteString(",\n")
		}
		if err := writeObject(&out, table.Columns, row); err != nil {
			return err
		}
	}
	out.WriteString("]\n")
	_, err := w.out().Write(out.Bytes())
	return err
}

// JSONPretty writes the rows as a single array of objects indented by two
// spaces.
func JSONPretty(table Table, w *Writer) error {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range table.Rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeObject(&compact, table.Columns, row); err != nil {
			return err
		}
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.out().Write(out.Bytes())
	return err
}

// encoding/json sorts map keys, so objects are assembled by hand to keep the
// column order.
func writeObject(out *bytes.Buffer, columns []string, row []any) error {
	keys, values := pairs(columns, row)
	out.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			out.WriteString(", ")
		}
		if err := writeJSON(out, key); err != nil {
			return err
		}
		out.WriteString(": ")
		if err := writeJSON(out, jsonValue(values[i])); err != nil {
			return err
		}
	}
	out.WriteByte('}')
	return nil
}

func writeJSON(out *bytes.Buffer, value any) error {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	out.Write(bytes.TrimSuffix(buffer.Bytes(), []byte("\n")))
	return nil
}

// blobs holding text are written as strings, anything else keeps
// encoding/json's base64 encoding of []byte
func jsonValue(value any) any {
	if b, ok := value.([]byte); ok && utf8.Valid(b) {
		return string(b)
	}
	return value
}
