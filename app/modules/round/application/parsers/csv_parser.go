package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser reads comma-delimited exports
type CSVParser struct{}

// NewCSVParser creates a new CSV parser
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads every record of the CSV data. Rows may have differing lengths;
// lookups past the end of a short row are handled by the callers.
func (p *CSVParser) Parse(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(stripBOM(data)))
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// WriteCSV writes rows as comma-delimited records.
func WriteCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
