package heatmapplotter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

func demoMatrix() *mat.Dense {
	return mat.NewDense(2, 2, []float64{50, 10, 5, 35})
}

func TestCellLabelsCountAndPercent(t *testing.T) {
	opts := Options{Count: true, Percent: true}
	labels, err := CellLabels(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("CellLabels: %v", err)
	}
	want := []string{"50\n50.00%", "10\n10.00%", "5\n5.00%", "35\n35.00%"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("cell %d: got %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestCellLabelsGroupNames(t *testing.T) {
	opts := Options{
		GroupNames: []string{"TN", "FP", "FN", "TP"},
		Count:      true,
		Percent:    true,
	}
	labels, err := CellLabels(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("CellLabels: %v", err)
	}
	if labels[0] != "TN\n50\n50.00%" {
		t.Errorf("cell 0: got %q", labels[0])
	}
	if labels[3] != "TP\n35\n35.00%" {
		t.Errorf("cell 3: got %q", labels[3])
	}
}

func TestCellLabelsGroupNamesLengthMismatchIgnored(t *testing.T) {
	opts := Options{
		GroupNames: []string{"only", "three", "names"},
		Count:      true,
	}
	labels, err := CellLabels(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("CellLabels: %v", err)
	}
	if labels[0] != "50" {
		t.Errorf("mismatched group names must be dropped, got %q", labels[0])
	}
}

func TestCellLabelsAllDisabled(t *testing.T) {
	labels, err := CellLabels(demoMatrix(), Options{})
	if err != nil {
		t.Fatalf("CellLabels: %v", err)
	}
	for i, l := range labels {
		if l != "" {
			t.Errorf("cell %d: got %q, want empty", i, l)
		}
	}
}

func TestCellLabelsPercentOnZeroTotal(t *testing.T) {
	if _, err := CellLabels(mat.NewDense(2, 2, nil), Options{Percent: true}); !errors.Is(err, ErrEmptyTotal) {
		t.Errorf("got %v, want ErrEmptyTotal", err)
	}
}

func TestRenderDefaults(t *testing.T) {
	p, err := Render(demoMatrix(), DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if p.Y.Label.Text != "True label" {
		t.Errorf("y label = %q", p.Y.Label.Text)
	}
	wantX := "Predicted label\n\nAccuracy=0.850\nPrecision=0.778\nRecall=0.875\nF1 Score=0.824"
	if p.X.Label.Text != wantX {
		t.Errorf("x label = %q, want %q", p.X.Label.Text, wantX)
	}
}

func TestRenderWithoutPlotLabels(t *testing.T) {
	opts := DefaultOptions()
	opts.XYPlotLabels = false
	p, err := Render(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if p.Y.Label.Text != "" {
		t.Errorf("y label = %q, want empty", p.Y.Label.Text)
	}
	if p.X.Label.Text != "\n\nAccuracy=0.850\nPrecision=0.778\nRecall=0.875\nF1 Score=0.824" {
		t.Errorf("x label = %q", p.X.Label.Text)
	}
}

func TestRenderTitle(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "tweets"
	p, err := Render(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if p.Title.Text != "tweets" {
		t.Errorf("title = %q", p.Title.Text)
	}
}

func tickLabels(m plot.Ticker) []string {
	var out []string
	for _, tick := range m.Ticks(0, 1) {
		out = append(out, tick.Label)
	}
	return out
}

func TestXYTicksSuppressCategories(t *testing.T) {
	opts := DefaultOptions()
	opts.Categories = []string{"neg", "pos"}
	opts.XYTicks = false
	p, err := Render(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := tickLabels(p.X.Tick.Marker); len(got) != 0 {
		t.Errorf("x ticks = %v, want none", got)
	}
	if got := tickLabels(p.Y.Tick.Marker); len(got) != 0 {
		t.Errorf("y ticks = %v, want none", got)
	}
}

func TestCategoryTicks(t *testing.T) {
	opts := DefaultOptions()
	opts.Categories = []string{"neg", "pos"}
	p, err := Render(demoMatrix(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := tickLabels(p.X.Tick.Marker)
	if len(got) != 2 || got[0] != "neg" || got[1] != "pos" {
		t.Errorf("x ticks = %v, want [neg pos]", got)
	}
}

func TestCategoryCountMismatch(t *testing.T) {
	opts := DefaultOptions()
	opts.Categories = []string{"a", "b", "c"}
	if _, err := Render(demoMatrix(), opts); err == nil {
		t.Fatal("expected category count mismatch error")
	}
}

func TestRenderRejectsNonSquare(t *testing.T) {
	if _, err := Render(mat.NewDense(2, 3, nil), DefaultOptions()); !errors.Is(err, ErrNotSquare) {
		t.Errorf("got %v, want ErrNotSquare", err)
	}
}

func TestRenderRejectsUnknownCMap(t *testing.T) {
	opts := DefaultOptions()
	opts.CMap = "viridis"
	if _, err := Render(demoMatrix(), opts); err == nil {
		t.Fatal("expected unknown cmap error")
	}
}

func TestSaveWritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cf.pdf", "cf.png"} {
		path := filepath.Join(dir, name)
		if err := Save(demoMatrix(), DefaultOptions(), path); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	if err := Save(demoMatrix(), DefaultOptions(), filepath.Join(t.TempDir(), "cf.svg")); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
