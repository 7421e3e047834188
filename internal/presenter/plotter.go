package presenter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/heatmapplotter"
)

func GenerateHeatmap(outputPath string, matrix mat.Matrix, opts heatmapplotter.Options) error {
	return heatmapplotter.Save(matrix, opts, outputPath)
}
