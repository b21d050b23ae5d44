package parsers

// DefaultRequiredPrefixes selects the player and game-score columns of a match export.
var DefaultRequiredPrefixes = []string{"Player", "Game"}

// RequiredColumns returns the indices of the header cells that start with any of
// the prefixes. Matching is case-sensitive.
func RequiredColumns(header []string, prefixes []string) []int {
	var idx []int
	for i, name := range header {
		if hasAnyPrefix(name, prefixes) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clean drops every data row whose required columns are all empty.
//
// The header row is always kept. A row with at least one required value
// present is kept even if other required values are blank. A header without
// any required column therefore keeps no data rows. Empty input yields empty
// output. The input slice is not modified.
func Clean(rows [][]string, requiredPrefixes []string) [][]string {
	if len(rows) == 0 {
		return [][]string{}
	}

	header := rows[0]
	required := RequiredColumns(header, requiredPrefixes)

	cleaned := make([][]string, 0, len(rows))
	cleaned = append(cleaned, header)

	for _, row := range rows[1:] {
		if anyPopulated(row, required) {
			cleaned = append(cleaned, row)
		}
	}

	return cleaned
}

func anyPopulated(row []string, columns []int) bool {
	for _, idx := range columns {
		if v, ok := cell(row, idx); ok && v != "" {
			return true
		}
	}
	return false
}
