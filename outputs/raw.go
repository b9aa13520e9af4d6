package outputs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Raw writes each row as Go formats the slice of values, one per line.
func Raw(table Table, w *Writer) error {
	out := w.out()
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(out, row); err != nil {
			return err
		}
	}
	return nil
}

// Python writes each row as a Python tuple literal, one per line.
func Python(table Table, w *Writer) error {
	out := w.out()
	for _, row := range table.Rows {
		if _, err := io.WriteString(out, pythonTuple(row)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func pythonTuple(row []any) string {
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = pythonRepr(v)
	}
	if len(values) == 1 {
		return "(" + values[0] + ",)"
	}
	return "(" + strings.Join(values, ", ") + ")"
}

func pythonRepr(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case string:
		return pythonString(v)
	case []byte:
		return "b" + pythonBytes(v)
	}
	return pythonString(fmt.Sprint(value))
}

// single quoted unless the text holds a ' and no "
func pythonString(s string) string {
	quote := byte('\'')
	if strings.IndexByte(s, '\'') != -1 && strings.IndexByte(s, '"') == -1 {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func pythonBytes(data []byte) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, c := range data {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\'':
			b.WriteString(`\'`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
