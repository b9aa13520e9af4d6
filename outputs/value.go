package outputs

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// text representation of a value for the text-based modes
func format(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case []byte:
		if utf8.Valid(v) {
			return string(v)
		}
		return "X'" + strings.ToUpper(hex.EncodeToString(v)) + "'"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprint(value)
}

func formatRow(row []any) []string {
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = format(v)
	}
	return values
}

func formatRows(rows [][]any) [][]string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = formatRow(row)
	}
	return data
}

// Pairs columns with their values the way a dictionary would: a repeated
// column name keeps its first position and takes its last value.
func pairs(columns []string, row []any) ([]string, []any) {
	index := make(map[string]int, len(columns))
	keys := make([]string, 0, len(columns))
	values := make([]any, 0, len(columns))
	for i, column := range columns {
		if at, ok := index[column]; ok {
			values[at] = row[i]
			continue
		}
		index[column] = len(keys)
		keys = append(keys, column)
		values = append(values, row[i])
	}
	return keys, values
}
