package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/confusion"
	"github.com/rbazin/nlp-disaster-tweets/pkg/evaluator"
	"github.com/rbazin/nlp-disaster-tweets/pkg/heatmapplotter"
	"github.com/rbazin/nlp-disaster-tweets/pkg/randgen"
)

// gaussModel scores a 2D point against two class centers with the
// log of an isotropic Gaussian density, producing raw two-class
// scores for the evaluator.
type gaussModel struct {
	centers [2][2]float64
	sigma   float64
}

func (g *gaussModel) Forward(features mat.Matrix) (*mat.Dense, error) {
	rows, cols := features.Dims()
	if cols != 2 {
		return nil, fmt.Errorf("gaussModel expects 2 features, got %d", cols)
	}

	scores := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		x := features.At(i, 0)
		y := features.At(i, 1)
		for c, center := range g.centers {
			dx := x - center[0]
			dy := y - center[1]
			scores.Set(i, c, -(dx*dx+dy*dy)/(2*g.sigma*g.sigma))
		}
	}
	return scores, nil
}

func main() {
	numPoints := flag.Int("num-points", 500, "points to generate per class")
	batchSize := flag.Int("batch-size", 64, "evaluation batch size")
	seed := flag.Uint64("seed", 42, "random seed")
	stddev := flag.Float64("stddev", 0.8, "class cluster spread")
	output := flag.String("output", "gauss-confusion.pdf", "heatmap output file")
	flag.Parse()

	features, labels := makeDataset(*numPoints, *stddev, *seed)
	loader, err := evaluator.NewSliceLoader(features, labels, *batchSize)
	if err != nil {
		log.Fatal("Error building loader:", err)
	}

	model := &gaussModel{
		centers: [2][2]float64{{-1, -1}, {1, 1}},
		sigma:   *stddev,
	}

	acc, err := evaluator.Accuracy(model, loader)
	if err != nil {
		log.Fatal("Error computing accuracy:", err)
	}
	rmse, err := evaluator.RMSE(model, loader)
	if err != nil {
		log.Fatal("Error computing RMSE:", err)
	}
	auc, err := evaluator.ROCAUC(model, loader)
	if err != nil {
		log.Fatal("Error computing ROC AUC:", err)
	}
	precision, err := evaluator.Precision(model, loader)
	if err != nil {
		log.Fatal("Error computing precision:", err)
	}

	fmt.Printf("accuracy:  %0.4f\n", acc)
	fmt.Printf("rmse:      %0.4f\n", rmse)
	fmt.Printf("roc auc:   %0.4f\n", auc)
	fmt.Printf("precision: %0.4f\n", precision)

	cf, err := confusionFor(model, loader)
	if err != nil {
		log.Fatal("Error building confusion matrix:", err)
	}

	opts := heatmapplotter.DefaultOptions()
	opts.Categories = []string{"class 0", "class 1"}
	opts.Title = "Gaussian demo"
	if err := heatmapplotter.Save(cf.Dense(), opts, *output); err != nil {
		log.Fatal("Error rendering heatmap:", err)
	}
	log.Println("Heatmap written to", *output)
}

// makeDataset draws numPoints 2D points per class around (-1,-1) and
// (1,1).
func makeDataset(numPoints int, stddev float64, seed uint64) (*mat.Dense, []int) {
	gens := [2][2]*randgen.Normal{
		{
			randgen.NewNormal(-1, stddev, -1-4*stddev, -1+4*stddev, seed),
			randgen.NewNormal(-1, stddev, -1-4*stddev, -1+4*stddev, seed+1),
		},
		{
			randgen.NewNormal(1, stddev, 1-4*stddev, 1+4*stddev, seed+2),
			randgen.NewNormal(1, stddev, 1-4*stddev, 1+4*stddev, seed+3),
		},
	}

	total := 2 * numPoints
	features := mat.NewDense(total, 2, nil)
	labels := make([]int, total)
	for class := 0; class < 2; class++ {
		xs := gens[class][0].RandN(numPoints)
		ys := gens[class][1].RandN(numPoints)
		for i := 0; i < numPoints; i++ {
			row := class*numPoints + i
			features.Set(row, 0, xs[i])
			features.Set(row, 1, ys[i])
			labels[row] = class
		}
	}
	return features, labels
}

// confusionFor replays the loader through the model and counts argmax
// outcomes.
func confusionFor(model evaluator.Model, loader evaluator.DataLoader) (*confusion.Matrix, error) {
	if err := loader.Reset(); err != nil {
		return nil, err
	}

	accum := evaluator.NewAccumulator()
	for {
		batch, err := loader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		scores, err := model.Forward(batch.Features)
		if err != nil {
			return nil, err
		}
		if err := accum.Add(scores, batch.Labels); err != nil {
			return nil, err
		}
	}
	if accum.Len() == 0 {
		return nil, fmt.Errorf("loader produced no examples")
	}
	return confusion.FromSlices(accum.Labels(), accum.ArgmaxClasses())
}
