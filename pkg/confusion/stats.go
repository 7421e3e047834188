package confusion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Summary holds the statistics shown below a confusion heatmap.
// Precision, recall and F1 are only populated for 2x2 matrices.
type Summary struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	Binary    bool
}

// Stats computes the summary statistics of a square count matrix.
// Accuracy is trace over total; for a 2x2 matrix the positive class is
// row/column 1 and precision, recall and F1 are included. Zero row or
// column sums in the binary case are errors, never Inf or NaN.
func Stats(cf mat.Matrix) (Summary, error) {
	r, c := cf.Dims()
	if r != c {
		return Summary{}, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}

	total := mat.Sum(cf)
	if total == 0 {
		return Summary{}, ErrEmpty
	}

	var trace float64
	for i := 0; i < r; i++ {
		trace += cf.At(i, i)
	}
	s := Summary{Accuracy: trace / total}

	if r != 2 {
		return s, nil
	}

	colSum := cf.At(0, 1) + cf.At(1, 1)
	rowSum := cf.At(1, 0) + cf.At(1, 1)
	if colSum == 0 {
		return Summary{}, ErrZeroColumn
	}
	if rowSum == 0 {
		return Summary{}, ErrZeroRow
	}

	s.Binary = true
	s.Precision = cf.At(1, 1) / colSum
	s.Recall = cf.At(1, 1) / rowSum
	s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	return s, nil
}

// Caption formats the summary the way the heatmap appends it to its
// x-axis label.
func (s Summary) Caption() string {
	if s.Binary {
		return fmt.Sprintf("\n\nAccuracy=%0.3f\nPrecision=%0.3f\nRecall=%0.3f\nF1 Score=%0.3f",
			s.Accuracy, s.Precision, s.Recall, s.F1)
	}
	return fmt.Sprintf("\n\nAccuracy=%0.3f", s.Accuracy)
}
