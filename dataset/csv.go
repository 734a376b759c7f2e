// SPDX-License-Identifier: MIT
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/manifold/matrix"
)

// ReadCSV parses numeric CSV records into a Dataset.
// A first record containing any non-numeric field is treated as a header and
// skipped. Blank lines are ignored by encoding/csv.
//
// Errors: ErrEmpty, ErrRagged, ErrParse (wrapped with line and column).
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		rows  [][]float64
		first = true
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		row, perr := parseRecord(rec)
		if perr != nil {
			if first {
				first = false
				continue
			}

			return nil, fmt.Errorf("line %d: %w", line, perr)
		}
		first = false
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(row), len(rows[0]), ErrRagged)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return New(rows, opts...)
}

func parseRecord(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("column %d %q: %w", j, field, ErrParse)
		}
		row[j] = v
	}

	return row, nil
}

// WriteCSV writes m as CSV, one row per record, using the shortest
// representation that round-trips each float64.
func WriteCSV(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	cw := csv.NewWriter(w)
	rows, cols := m.Shape()
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j, v := range m.Row(i) {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
