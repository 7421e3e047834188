package randgen

import "testing"

func TestUniformRange(t *testing.T) {
	g := NewUniform(-2, 3, 7)
	for _, v := range g.RandN(1000) {
		if v < -2 || v >= 3 {
			t.Fatalf("value %v outside [-2, 3)", v)
		}
	}
}

func TestNormalBounds(t *testing.T) {
	g := NewNormal(0, 1, -2, 2, 7)
	samples := g.RandN(1000)
	if len(samples) != 1000 {
		t.Fatalf("got %d samples, want 1000", len(samples))
	}
	for _, v := range samples {
		if v < g.Min() || v > g.Max() {
			t.Fatalf("value %v outside [%v, %v]", v, g.Min(), g.Max())
		}
	}
}

func TestNormalRoughlyCentered(t *testing.T) {
	g := NewNormal(5, 0.5, 3, 7, 11)
	sum := 0.0
	n := 2000
	for _, v := range g.RandN(n) {
		sum += v
	}
	mean := sum / float64(n)
	if mean < 4.5 || mean > 5.5 {
		t.Errorf("sample mean %v too far from 5", mean)
	}
}

func TestBoxMullerClamped(t *testing.T) {
	g := NewBoxMuller(0, 10, -1, 1, 3)
	for _, v := range g.RandN(1000) {
		if v < -1 || v > 1 {
			t.Fatalf("value %v outside clamp [-1, 1]", v)
		}
	}
}

func TestGeneratorInterface(t *testing.T) {
	gens := []Generator{
		NewUniform(0, 1, 1),
		NewNormal(0, 1, -3, 3, 1),
		NewBoxMuller(0, 1, -3, 3, 1),
	}
	for i, g := range gens {
		if got := len(g.RandN(10)); got != 10 {
			t.Errorf("generator %d: RandN(10) returned %d values", i, got)
		}
	}
}
