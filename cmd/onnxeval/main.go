package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/rbazin/nlp-disaster-tweets/pkg/evaluator"
	"github.com/rbazin/nlp-disaster-tweets/pkg/metrics"
	"github.com/rbazin/nlp-disaster-tweets/pkg/onnxmodel"
	"github.com/rbazin/nlp-disaster-tweets/pkg/readmatrix"
)

func main() {
	modelPath := flag.String("model", "model.onnx", "ONNX model file")
	dataPath := flag.String("data", "test.csv", "dataset file, last column is the class label")
	inputName := flag.String("input-name", "input", "model input tensor name")
	outputName := flag.String("output-name", "output", "model output tensor name")
	batchSize := flag.Int("batch-size", 32, "evaluation batch size")
	cudaDevice := flag.String("cuda-device", "", "CUDA device id, empty for CPU")
	flag.Parse()

	features, labels, err := readmatrix.ReadDataset(*dataPath)
	if err != nil {
		log.Fatal("Error reading dataset:", err)
	}

	loader, err := evaluator.NewSliceLoader(features, labels, *batchSize)
	if err != nil {
		log.Fatal("Error building loader:", err)
	}

	model, err := onnxmodel.New(onnxmodel.Config{
		ModelPath:    *modelPath,
		InputName:    *inputName,
		OutputName:   *outputName,
		CUDADeviceID: *cudaDevice,
	})
	if err != nil {
		log.Fatal("Error opening model:", err)
	}
	defer model.Close()

	report(loader, model)
}

func report(loader evaluator.DataLoader, model evaluator.Model) {
	printMetric("accuracy", func() (float64, error) { return evaluator.Accuracy(model, loader) })
	printMetric("precision", func() (float64, error) { return evaluator.Precision(model, loader) })
	printMetric("rmse", func() (float64, error) { return evaluator.RMSE(model, loader) })
	printMetric("roc auc", func() (float64, error) { return evaluator.ROCAUC(model, loader) })
}

func printMetric(name string, compute func() (float64, error)) {
	v, err := compute()
	switch {
	case errors.Is(err, metrics.ErrSingleClass), errors.Is(err, evaluator.ErrNotBinary):
		fmt.Printf("%-10s skipped: %v\n", name, err)
	case err != nil:
		log.Fatalf("Error computing %s: %v", name, err)
	default:
		fmt.Printf("%-10s %0.4f\n", name, v)
	}
}
