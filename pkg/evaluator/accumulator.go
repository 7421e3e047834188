package evaluator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/metrics"
)

// Accumulator collects sigmoid-activated prediction rows and their
// labels across batches. It grows a flat buffer instead of
// concatenating matrices, and it keeps the row/label counts in sync at
// all times. Callers batching in parallel can feed one accumulator
// sequentially and reduce once at the end.
type Accumulator struct {
	probs   []float64
	labels  []int
	classes int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends one batch of raw scores and labels. The score matrix
// width is fixed by the first batch; a later batch with a different
// width is rejected.
func (a *Accumulator) Add(scores *mat.Dense, labels []int) error {
	rows, cols := scores.Dims()
	if rows != len(labels) {
		return fmt.Errorf("evaluator: %d score rows but %d labels", rows, len(labels))
	}
	if a.classes == 0 {
		a.classes = cols
	} else if cols != a.classes {
		return fmt.Errorf("evaluator: model output width changed from %d to %d columns", a.classes, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a.probs = append(a.probs, sigmoid(scores.At(i, j)))
		}
	}
	a.labels = append(a.labels, labels...)
	return nil
}

// Len returns the number of accumulated examples.
func (a *Accumulator) Len() int { return len(a.labels) }

// Classes returns the model output width, 0 before the first batch.
func (a *Accumulator) Classes() int { return a.classes }

// Labels returns the accumulated ground-truth labels in feed order.
func (a *Accumulator) Labels() []int { return a.labels }

// Probs returns the accumulated probability rows as a dense matrix.
func (a *Accumulator) Probs() *mat.Dense {
	if a.Len() == 0 {
		return nil
	}
	return mat.NewDense(a.Len(), a.classes, a.probs)
}

// ArgmaxClasses returns the predicted class per example, the index of
// the largest probability in each row.
func (a *Accumulator) ArgmaxClasses() []int {
	out := make([]int, a.Len())
	for i := range out {
		out[i] = metrics.Argmax(a.probs[i*a.classes : (i+1)*a.classes])
	}
	return out
}

// PositiveProbs returns the class-1 probability per example. It fails
// unless the model emitted exactly two classes, so the binary-only
// metrics cannot silently slice column 1 of a multi-class output.
func (a *Accumulator) PositiveProbs() ([]float64, error) {
	if a.classes != 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrNotBinary, a.classes)
	}
	out := make([]float64, a.Len())
	for i := range out {
		out[i] = a.probs[i*2+1]
	}
	return out, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
