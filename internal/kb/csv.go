// File path: internal/kb/csv.go
package kb

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvRow is one data record keyed by header column name.
type csvRow map[string]string

// readCSVRows decodes header-keyed CSV records. Rows shorter than the
// header are padded with empty values; a UTF-8 BOM on the first header cell
// is stripped.
func readCSVRows(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		row := make(csvRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
