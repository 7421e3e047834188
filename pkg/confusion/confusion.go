// Package confusion builds square confusion matrices from label pairs
// and derives summary statistics from them.
package confusion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotSquare  = errors.New("confusion: matrix is not square")
	ErrEmpty      = errors.New("confusion: matrix total is zero")
	ErrZeroColumn = errors.New("confusion: predicted-positive column sums to zero")
	ErrZeroRow    = errors.New("confusion: actual-positive row sums to zero")
)

// Matrix counts true-class (rows) vs predicted-class (columns)
// outcomes.
type Matrix struct {
	counts *mat.Dense
}

// New returns an n-by-n zero matrix.
func New(n int) *Matrix {
	return &Matrix{counts: mat.NewDense(n, n, nil)}
}

// FromSlices counts each (true, predicted) pair. The class count is
// one more than the largest label seen; labels must be non-negative.
func FromSlices(yTrue, yPred []int) (*Matrix, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("confusion: %d labels but %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, errors.New("confusion: no examples")
	}
	n := 0
	for i := range yTrue {
		if yTrue[i] < 0 || yPred[i] < 0 {
			return nil, fmt.Errorf("confusion: negative class label at row %d", i)
		}
		if yTrue[i] >= n {
			n = yTrue[i] + 1
		}
		if yPred[i] >= n {
			n = yPred[i] + 1
		}
	}

	m := New(n)
	for i := range yTrue {
		m.Add(yTrue[i], yPred[i])
	}
	return m, nil
}

// FromDense wraps an existing count matrix, rejecting non-square input.
func FromDense(d *mat.Dense) (*Matrix, error) {
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	return &Matrix{counts: d}, nil
}

// Add increments the (trueClass, predClass) cell.
func (m *Matrix) Add(trueClass, predClass int) {
	m.counts.Set(trueClass, predClass, m.counts.At(trueClass, predClass)+1)
}

// At returns the count in cell (i, j).
func (m *Matrix) At(i, j int) float64 { return m.counts.At(i, j) }

// Dims returns the class count.
func (m *Matrix) Dims() int {
	r, _ := m.counts.Dims()
	return r
}

// Dense exposes the underlying count matrix.
func (m *Matrix) Dense() *mat.Dense { return m.counts }

// Total returns the grand total over all cells.
func (m *Matrix) Total() float64 { return mat.Sum(m.counts) }

// Trace returns the sum of the diagonal, the correctly classified
// count.
func (m *Matrix) Trace() float64 { return mat.Trace(m.counts) }
