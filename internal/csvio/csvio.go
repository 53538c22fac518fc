// Package csvio implements the delimited-text codec behind the flat-file
// stores. Records travel as header-keyed rows; list-valued cells are
// packed with a pipe separator inside a single CSV cell.
package csvio

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// ListSeparator packs list-valued cells (images, features). A list
// element that itself contains a pipe will corrupt the round trip;
// this is an accepted limitation of the format, not something the
// codec tries to repair.
const ListSeparator = "|"

// Encode renders rows under the given header. Every row is emitted in
// header order; keys absent from a row encode as empty cells. Cells
// containing commas, quotes or newlines are quoted by encoding/csv.
func Encode(header []string, rows []map[string]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}

// Decode parses delimited text into header-keyed rows. The first line
// names the columns (names are trimmed); blank lines are skipped; rows
// shorter than the header leave the missing cells empty, and cells
// beyond the header are dropped. A file with no data lines decodes to
// an empty slice, not an error.
func Decode(text string) ([]map[string]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// JoinList packs list elements into a single cell.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// SplitList unpacks a pipe-packed cell. Elements are trimmed and empty
// elements dropped, so a trailing separator does not produce a phantom
// entry. An empty cell yields an empty (non-nil) slice.
func SplitList(cell string) []string {
	items := []string{}
	for _, item := range strings.Split(cell, ListSeparator) {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
