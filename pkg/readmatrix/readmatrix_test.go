package readmatrix

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadMatrixWhitespace(t *testing.T) {
	path := writeFile(t, "# comment\n1 2 3\n4 5 6\n")
	m, err := ReadMatrix(path)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", r, c)
	}
	if m.At(1, 2) != 6 {
		t.Errorf("cell (1,2) = %v, want 6", m.At(1, 2))
	}
}

func TestReadMatrixComma(t *testing.T) {
	path := writeFile(t, "50,10\n5,35\n")
	m, err := ReadMatrix(path)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", r, c)
	}
	if m.At(0, 0) != 50 {
		t.Errorf("cell (0,0) = %v, want 50", m.At(0, 0))
	}
}

func TestReadMatrixSkipsHeader(t *testing.T) {
	path := writeFile(t, "col_a col_b\n1 2\n3 4\n")
	m, err := ReadMatrix(path)
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	r, _ := m.Dims()
	if r != 2 {
		t.Errorf("rows = %d, want 2 (header skipped)", r)
	}
}

func TestReadMatrixRaggedRows(t *testing.T) {
	path := writeFile(t, "1 2 3\n4 5\n")
	if _, err := ReadMatrix(path); err == nil {
		t.Fatal("expected ragged row error")
	}
}

func TestReadMatrixEmptyFile(t *testing.T) {
	path := writeFile(t, "# only a comment\n")
	if _, err := ReadMatrix(path); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}

func TestReadMatrixMissingFile(t *testing.T) {
	if _, err := ReadMatrix(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadDataset(t *testing.T) {
	path := writeFile(t, "0.1,0.2,0\n0.3,0.4,1\n0.5,0.6,1\n")
	features, labels, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	r, c := features.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("feature dims = %dx%d, want 3x2", r, c)
	}
	want := []int{0, 1, 1}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %d, want %d", i, labels[i], want[i])
		}
	}
}

func TestReadDatasetRejectsFractionalLabels(t *testing.T) {
	path := writeFile(t, "0.1 0.5\n0.2 1.5\n")
	if _, _, err := ReadDataset(path); err == nil {
		t.Fatal("expected error for non-integer label")
	}
}

func TestReadDatasetNeedsFeatureColumn(t *testing.T) {
	path := writeFile(t, "0\n1\n")
	if _, _, err := ReadDataset(path); err == nil {
		t.Fatal("expected error for label-only dataset")
	}
}
