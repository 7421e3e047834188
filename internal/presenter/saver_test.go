package presenter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/confusion"
)

func TestSaveDenseToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf.csv")
	m := mat.NewDense(2, 2, []float64{50, 10, 5, 35})
	if err := SaveDenseToCSV(m, path); err != nil {
		t.Fatalf("SaveDenseToCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "50,10" {
		t.Errorf("first line = %q, want %q", lines[0], "50,10")
	}
}

func TestSaveReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	s := confusion.Summary{Accuracy: 0.85, Precision: 0.7778, Recall: 0.875, F1: 0.8235, Binary: true}
	if err := SaveReportCSV(s, path); err != nil {
		t.Fatalf("SaveReportCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(data)
	for _, want := range []string{"metric,value", "accuracy,0.850", "precision,0.778", "recall,0.875", "f1,0.824"} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q in %q", want, content)
		}
	}
}
