// Package readmatrix loads numeric matrices and labeled datasets from
// whitespace- or comma-separated text files.
package readmatrix

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrix parses a numeric matrix from a text file. Fields may be
// separated by whitespace or commas. Blank lines and lines starting
// with '#' are skipped, as is a single leading header row containing
// non-numeric fields. All data rows must have the same width.
func ReadMatrix(filename string) (*mat.Dense, error) {
	rows, err := readRows(filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("readmatrix: %s contains no data rows", filename)
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("readmatrix: row %d has %d columns, expected %d", i+1, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

// ReadDataset parses a matrix whose last column is an integer class
// label, returning the feature matrix and the labels separately.
func ReadDataset(filename string) (*mat.Dense, []int, error) {
	full, err := ReadMatrix(filename)
	if err != nil {
		return nil, nil, err
	}
	r, c := full.Dims()
	if c < 2 {
		return nil, nil, fmt.Errorf("readmatrix: dataset needs at least one feature and a label column, got %d columns", c)
	}

	labels := make([]int, r)
	for i := 0; i < r; i++ {
		v := full.At(i, c-1)
		if v != math.Trunc(v) || v < 0 {
			return nil, nil, fmt.Errorf("readmatrix: row %d label %v is not a non-negative integer", i+1, v)
		}
		labels[i] = int(v)
	}
	features := mat.DenseCopyOf(full.Slice(0, r, 0, c-1))
	return features, labels, nil
}

func readRows(filename string) ([][]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("readmatrix: open file: %w", err)
	}
	defer file.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(file)
	headerChecked := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)
		if !headerChecked {
			headerChecked = true
			if !allNumeric(fields) {
				continue
			}
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("readmatrix: parse float at line %d, column %d: %w", len(rows)+1, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("readmatrix: read file: %w", err)
	}
	return rows, nil
}

func splitFields(line string) []string {
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				fields = append(fields, p)
			}
		}
		return fields
	}
	return strings.Fields(line)
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}
