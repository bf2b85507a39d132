package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// loadMatrix reads a CSV file of numbers into a dense matrix. Every row must
// have the same number of fields; channel orientation is detected downstream.
func loadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("read %s: no data", path)
	}
	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("read %s: row %d has %d fields, want %d", path, i+1, len(rec), cols)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("read %s: row %d field %d: %q is not a number", path, i+1, j+1, field)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
