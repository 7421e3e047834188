// Package evaluator runs a trained classifier over a batched data
// source and reduces the accumulated predictions to a single metric.
package evaluator

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/metrics"
)

// Model produces raw pre-activation scores for a batch of features,
// one row per example and one column per class. The model is assumed
// to already be in evaluation mode; nothing here enforces it.
type Model interface {
	Forward(features mat.Matrix) (*mat.Dense, error)
}

// DataLoader yields batches in a fixed order until io.EOF. Reset must
// rewind the loader so a later evaluation can consume it again.
type DataLoader interface {
	Next() (*Batch, error)
	Reset() error
}

// Batch pairs a feature matrix with its per-row class labels.
type Batch struct {
	Features *mat.Dense
	Labels   []int
}

// Len returns the number of examples in the batch.
func (b *Batch) Len() int {
	if b.Features == nil {
		return 0
	}
	r, _ := b.Features.Dims()
	return r
}

func (b *Batch) validate() error {
	if b.Len() != len(b.Labels) {
		return fmt.Errorf("evaluator: batch has %d feature rows but %d labels", b.Len(), len(b.Labels))
	}
	return nil
}

// ErrNotBinary is returned by the binary-only metrics (RMSE, ROCAUC)
// when the model output width is not exactly two classes.
var ErrNotBinary = errors.New("evaluator: metric requires a model with exactly 2 output classes")

// Accuracy evaluates the model over the full loader and returns the
// fraction of examples whose argmax class matches the label.
func Accuracy(m Model, dl DataLoader) (float64, error) {
	acc, err := run(m, dl)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(acc.Labels(), acc.ArgmaxClasses())
}

// Precision evaluates the model over the full loader and returns the
// positive predictive value, with class 1 positive.
func Precision(m Model, dl DataLoader) (float64, error) {
	acc, err := run(m, dl)
	if err != nil {
		return 0, err
	}
	return metrics.Precision(acc.Labels(), acc.ArgmaxClasses())
}

// RMSE evaluates the model over the full loader and returns the root
// mean squared error between labels and the class-1 probability. The
// model must emit exactly two score columns.
func RMSE(m Model, dl DataLoader) (float64, error) {
	acc, err := run(m, dl)
	if err != nil {
		return 0, err
	}
	probs, err := acc.PositiveProbs()
	if err != nil {
		return 0, err
	}
	labels := acc.Labels()
	yTrue := make([]float64, len(labels))
	for i, label := range labels {
		yTrue[i] = float64(label)
	}
	return metrics.RMSE(yTrue, probs)
}

// ROCAUC evaluates the model over the full loader and returns the area
// under the ROC curve of the class-1 probability against the labels.
// The model must emit exactly two score columns, and the labels must
// contain both classes.
func ROCAUC(m Model, dl DataLoader) (float64, error) {
	acc, err := run(m, dl)
	if err != nil {
		return 0, err
	}
	probs, err := acc.PositiveProbs()
	if err != nil {
		return 0, err
	}
	return metrics.ROCAUC(acc.Labels(), probs)
}

// run consumes the loader once, sigmoid-activating every batch of raw
// scores into a fresh accumulator. Any batch failure aborts the whole
// evaluation.
func run(m Model, dl DataLoader) (*Accumulator, error) {
	if err := dl.Reset(); err != nil {
		return nil, fmt.Errorf("evaluator: reset loader: %w", err)
	}

	acc := NewAccumulator()
	for {
		batch, err := dl.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("evaluator: next batch: %w", err)
		}
		if err := batch.validate(); err != nil {
			return nil, err
		}

		scores, err := m.Forward(batch.Features)
		if err != nil {
			return nil, fmt.Errorf("evaluator: forward pass: %w", err)
		}
		if err := acc.Add(scores, batch.Labels); err != nil {
			return nil, err
		}
	}
	if acc.Len() == 0 {
		return nil, errors.New("evaluator: data loader produced no examples")
	}
	return acc, nil
}
