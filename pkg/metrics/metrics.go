// Package metrics computes scalar classification metrics from
// label and probability slices.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyInput     = errors.New("metrics: empty input")
	ErrLengthMismatch = errors.New("metrics: label and prediction lengths differ")
	// ErrSingleClass is returned by ROCAUC when every label belongs to the
	// same class; the ROC curve is undefined in that case.
	ErrSingleClass = errors.New("metrics: labels contain a single class")
	// ErrNoPositivePredictions is returned by Precision when nothing was
	// predicted positive, which would make the ratio 0/0.
	ErrNoPositivePredictions = errors.New("metrics: no positive predictions")
)

// Accuracy returns the fraction of predictions equal to their labels.
func Accuracy(yTrue, yPred []int) (float64, error) {
	if err := checkLens(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// Precision returns tp/(tp+fp) with class 1 taken as positive.
func Precision(yTrue, yPred []int) (float64, error) {
	if err := checkLens(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	tp, fp := 0, 0
	for i := range yTrue {
		if yPred[i] != 1 {
			continue
		}
		if yTrue[i] == 1 {
			tp++
		} else {
			fp++
		}
	}
	if tp+fp == 0 {
		return 0, ErrNoPositivePredictions
	}
	return float64(tp) / float64(tp+fp), nil
}

// RMSE returns the root mean squared error between labels and predicted
// probabilities.
func RMSE(yTrue, yPred []float64) (float64, error) {
	if err := checkLens(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return floats.Distance(yTrue, yPred, 2) / math.Sqrt(float64(len(yTrue))), nil
}

// ROCAUC returns the area under the ROC curve for binary labels and
// positive-class scores.
func ROCAUC(yTrue []int, scores []float64) (float64, error) {
	if err := checkLens(len(yTrue), len(scores)); err != nil {
		return 0, err
	}

	pos := 0
	for _, label := range yTrue {
		if label == 1 {
			pos++
		}
	}
	if pos == 0 || pos == len(yTrue) {
		return 0, ErrSingleClass
	}

	// stat.ROC wants scores ascending with classes aligned.
	y := make([]float64, len(scores))
	copy(y, scores)
	classes := make([]bool, len(yTrue))
	idx := make([]int, len(yTrue))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return y[idx[i]] < y[idx[j]] })
	sortedY := make([]float64, len(y))
	for i, j := range idx {
		sortedY[i] = y[j]
		classes[i] = yTrue[j] == 1
	}

	tpr, fpr, _ := stat.ROC(nil, sortedY, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}

// Argmax returns the index of the largest value in row. Ties resolve to
// the lowest index. Returns -1 for an empty row.
func Argmax(row []float64) int {
	if len(row) == 0 {
		return -1
	}
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return best
}

func checkLens(n, m int) error {
	if n == 0 || m == 0 {
		return ErrEmptyInput
	}
	if n != m {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, m)
	}
	return nil
}
