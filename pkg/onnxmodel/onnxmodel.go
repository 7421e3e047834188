// Package onnxmodel exposes an ONNX Runtime classifier session as an
// evaluator.Model, so exported models can be scored by the metric
// evaluators.
package onnxmodel

import (
	"errors"
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"
	"gonum.org/v1/gonum/mat"
)

// Config selects the model file and execution provider.
type Config struct {
	ModelPath  string
	InputName  string
	OutputName string
	// CUDADeviceID enables the CUDA provider when non-empty.
	CUDADeviceID string
}

// Model wraps a dynamic ONNX session. It is not safe for concurrent
// Forward calls.
type Model struct {
	session *ort.DynamicAdvancedSession
	cfg     Config
}

// New initializes the ONNX environment and opens a session for the
// configured model. Callers must Close the model when done.
func New(cfg Config) (*Model, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("onnxmodel: model path is required")
	}
	if cfg.InputName == "" {
		cfg.InputName = "input"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "output"
	}

	if p, ok := os.LookupEnv("ONNXRUNTIME_SHARED_LIBRARY_PATH"); ok {
		ort.SetSharedLibraryPath(p)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("onnxmodel: initialize environment: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnxmodel: session options: %w", err)
	}
	defer options.Destroy()

	if cfg.CUDADeviceID != "" {
		if err := appendCUDAProvider(options, cfg.CUDADeviceID); err != nil {
			return nil, err
		}
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, options)
	if err != nil {
		return nil, fmt.Errorf("onnxmodel: open session: %w", err)
	}

	return &Model{session: session, cfg: cfg}, nil
}

// Forward runs the session on a batch of features and returns the raw
// per-class scores, one row per example.
func (m *Model) Forward(features mat.Matrix) (*mat.Dense, error) {
	rows, cols := features.Dims()

	data := make([]float32, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float32(features.At(i, j))
		}
	}

	input, err := ort.NewTensor(ort.NewShape(int64(rows), int64(cols)), data)
	if err != nil {
		return nil, fmt.Errorf("onnxmodel: input tensor: %w", err)
	}
	defer input.Destroy()

	outputs := []ort.Value{nil}
	if err := m.session.Run([]ort.Value{input}, outputs); err != nil {
		return nil, fmt.Errorf("onnxmodel: inference: %w", err)
	}
	defer outputs[0].Destroy()

	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, errors.New("onnxmodel: model output is not a float32 tensor")
	}

	raw := out.GetData()
	if len(raw)%rows != 0 {
		return nil, fmt.Errorf("onnxmodel: output size %d not divisible by batch size %d", len(raw), rows)
	}
	classes := len(raw) / rows

	scores := mat.NewDense(rows, classes, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < classes; j++ {
			scores.Set(i, j, float64(raw[i*classes+j]))
		}
	}
	return scores, nil
}

// Close tears down the session and the ONNX environment.
func (m *Model) Close() error {
	if m.session != nil {
		m.session.Destroy()
		m.session = nil
	}
	return ort.DestroyEnvironment()
}

func appendCUDAProvider(options *ort.SessionOptions, deviceID string) error {
	cudaOptions, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return fmt.Errorf("onnxmodel: cuda provider options: %w", err)
	}
	if err := cudaOptions.Update(map[string]string{"device_id": deviceID}); err != nil {
		return fmt.Errorf("onnxmodel: set cuda device: %w", err)
	}
	if err := options.AppendExecutionProviderCUDA(cudaOptions); err != nil {
		return fmt.Errorf("onnxmodel: append cuda provider: %w", err)
	}
	return cudaOptions.Destroy()
}
