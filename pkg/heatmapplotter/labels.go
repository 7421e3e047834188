package heatmapplotter

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// CellLabels builds the annotation text for each cell in row-major
// order: group name, raw count and share of the grand total, each on
// its own line, with disabled components contributing nothing. Group
// names whose length does not match the cell count are dropped.
func CellLabels(cf mat.Matrix, opts Options) ([]string, error) {
	rows, cols := cf.Dims()
	size := rows * cols

	names := opts.GroupNames
	if len(names) != size {
		names = nil
	}

	total := mat.Sum(cf)
	if opts.Percent && total == 0 {
		return nil, ErrEmptyTotal
	}

	labels := make([]string, size)
	for i := 0; i < size; i++ {
		var b strings.Builder
		if names != nil {
			fmt.Fprintf(&b, "%s\n", names[i])
		}
		v := cf.At(i/cols, i%cols)
		if opts.Count {
			fmt.Fprintf(&b, "%0.0f\n", v)
		}
		if opts.Percent {
			fmt.Fprintf(&b, "%.2f%%", 100*v/total)
		}
		labels[i] = strings.TrimSpace(b.String())
	}
	return labels, nil
}
