// SPDX-License-Identifier: MIT
// Package: tsio
//
// csv.go — dense matrices and vectors as CSV.

package tsio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrixCSV parses a rectangular numeric CSV into a dense matrix.
// Surrounding whitespace in cells is ignored.
func ReadMatrixCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("ReadMatrixCSV: %v: %w", perr, ErrMalformedCSV)
		}
		return nil, fmt.Errorf("ReadMatrixCSV: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("ReadMatrixCSV: empty input: %w", ErrMalformedCSV)
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadMatrixCSV: cell [%d,%d]=%q: %w", i, j, cell, ErrMalformedCSV)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// WriteMatrixCSV writes m row by row.
func WriteMatrixCSV(w io.Writer, m mat.Matrix) error {
	r, c := m.Dims()
	cw := csv.NewWriter(w)
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteMatrixCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadVectorCSV parses a CSV holding a single row or a single column.
func ReadVectorCSV(r io.Reader) ([]float64, error) {
	m, err := ReadMatrixCSV(r)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if rows != 1 && cols != 1 {
		return nil, fmt.Errorf("ReadVectorCSV: %dx%d: %w", rows, cols, ErrNotVector)
	}

	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out, nil
}

// ReadMatrixFile opens path and parses it with ReadMatrixCSV.
func ReadMatrixFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrixCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadVectorFile opens path and parses it with ReadVectorCSV.
func ReadVectorFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := ReadVectorCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// WriteMatrixFile creates (or truncates) path and writes m as CSV.
func WriteMatrixFile(path string, m mat.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteMatrixCSV(f, m)
}
