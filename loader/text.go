package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ReadText reads a dataset from r in text form: one item per non-empty
// line, fields separated by commas, tabs, or runs of whitespace (so both
// CSV and TSV style inputs are accepted without a mode flag).
func ReadText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	width := -1

	scanner := bufio.NewScanner(r)
	// Default token buffer is 64KiB; widen it for wide rows.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := splitFields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, ErrBadField
			}
			row[i] = v
		}

		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, ErrRaggedRow
		}

		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// splitFields splits a line on commas if present, otherwise on runs of
// whitespace.
func splitFields(line string) []string {
	if strings.ContainsRune(line, ',') {
		parts := strings.Split(line, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return strings.Fields(line)
}
