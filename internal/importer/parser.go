// Package importer parses semicolon-separated invoice CSV exports
// into invoice import params.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/nicholasDWinters/biztime-exercise/internal/encoding"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

// Recognized column headers. comp_code and amt are required; the rest
// are optional and fall back to the schema defaults.
const (
	colCompCode = "comp_code"
	colAmount   = "amt"
	colPaid     = "paid"
	colPaidDate = "paid_date"
)

const dateLayout = "2006-01-02"

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// Parse reads an invoice CSV export. The file may carry preamble rows
// before the header; the header is found by scanning for a row that
// contains both required columns. Amounts are European-formatted
// ("1.234,56").
func Parse(r io.Reader) ([]invoice.ImportParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row with %q and %q columns found", colCompCode, colAmount)
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+2)
}

// findHeader scans rows for one naming both required columns and
// returns the column index map plus the header's row index.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		_, hasCode := cols[colCompCode]
		_, hasAmt := cols[colAmount]

		if hasCode && hasAmt {
			return cols, rowIdx
		}
	}

	return nil, -1
}

// parseRows converts data rows into import params. firstLine is the
// 1-based file line of the first data row, used in error messages.
func parseRows(cols colIndex, rows [][]string, firstLine int) ([]invoice.ImportParams, error) {
	var params []invoice.ImportParams

	for i, row := range rows {
		line := firstLine + i

		if isBlank(row) {
			continue
		}

		compCode := cell(row, cols, colCompCode)
		if compCode == "" {
			return nil, fmt.Errorf("line %d: missing %s", line, colCompCode)
		}

		rawAmt := cell(row, cols, colAmount)
		if rawAmt == "" {
			return nil, fmt.Errorf("line %d: missing %s", line, colAmount)
		}

		amt, err := parseAmount(rawAmt)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad amount %q: %w", line, rawAmt, err)
		}

		p := invoice.ImportParams{
			CompCode: compCode,
			Amt:      amt,
		}

		if raw := cell(row, cols, colPaid); raw != "" {
			paid, err := strconv.ParseBool(strings.ToLower(raw))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad paid flag %q", line, raw)
			}

			p.Paid = paid
		}

		if raw := cell(row, cols, colPaidDate); raw != "" {
			d, err := time.Parse(dateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad paid_date %q: %w", line, raw, err)
			}

			p.PaidDate = &d
		}

		params = append(params, p)
	}

	return params, nil
}

func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
