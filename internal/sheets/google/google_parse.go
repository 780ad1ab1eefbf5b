package google

import (
	"fmt"
	"strings"
)

// findRowIndex returns the zero-based index of the row whose first cell is
// id, or -1.
func findRowIndex(values [][]interface{}, id string) int {
	for i, row := range values {
		if len(row) == 0 {
			continue
		}
		if strings.TrimSpace(fmt.Sprint(row[0])) == id {
			return i
		}
	}
	return -1
}

// a1Range quotes the sheet name so names with spaces or quotes stay valid.
func a1Range(sheet, cells string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + cells
}

// lastColumn is the A1 letter of the last exported column.
func lastColumn(n int) string {
	var s string
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

func toInterfaces(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
