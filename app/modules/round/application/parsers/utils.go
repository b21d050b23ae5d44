package parsers

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM drops a leading UTF-8 byte order mark, which spreadsheet exports
// tend to prepend to the first header cell.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// trimSpaces strips leading and trailing ' ' characters only. Tabs and other
// whitespace are part of the value.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}

// cell returns row[idx], or "" with ok=false when the row is too short.
func cell(row []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// hasAnyPrefix reports whether s starts with at least one of the prefixes.
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
