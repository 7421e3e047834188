package evaluator

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// SliceLoader is an in-memory DataLoader over a feature matrix and its
// labels, cut into fixed-size batches in row order. The final batch may
// be short.
type SliceLoader struct {
	features  *mat.Dense
	labels    []int
	batchSize int
	cursor    int
}

// NewSliceLoader wraps features and labels into a restartable loader.
func NewSliceLoader(features *mat.Dense, labels []int, batchSize int) (*SliceLoader, error) {
	rows, _ := features.Dims()
	if rows != len(labels) {
		return nil, fmt.Errorf("evaluator: %d feature rows but %d labels", rows, len(labels))
	}
	if batchSize <= 0 {
		return nil, errors.New("evaluator: batch size must be > 0")
	}
	return &SliceLoader{
		features:  features,
		labels:    labels,
		batchSize: batchSize,
	}, nil
}

func (l *SliceLoader) Reset() error {
	l.cursor = 0
	return nil
}

func (l *SliceLoader) Next() (*Batch, error) {
	rows, cols := l.features.Dims()
	if l.cursor >= rows {
		return nil, io.EOF
	}
	end := l.cursor + l.batchSize
	if end > rows {
		end = rows
	}

	view := l.features.Slice(l.cursor, end, 0, cols).(*mat.Dense)
	batch := &Batch{
		Features: mat.DenseCopyOf(view),
		Labels:   l.labels[l.cursor:end],
	}
	l.cursor = end
	return batch, nil
}
