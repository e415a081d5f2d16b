package testkit

import (
	"math"
	"testing"
)

func TestNormalSampleDeterministic(t *testing.T) {
	a := NormalSample(50, 10, 2, 99)
	b := NormalSample(50, 10, 2, 99)
	c := NormalSample(50, 10, 2, 100)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical draws at %d, got %v and %v", i, a[i], b[i])
		}
	}

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different samples")
	}
}

func TestNormalSampleMoments(t *testing.T) {
	sample := NormalSample(20000, 5, 3, 1)

	var sum float64
	for _, v := range sample {
		sum += v
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("Unexpected non-finite draw %v", v)
		}
	}
	mean := sum / float64(len(sample))
	if math.Abs(mean-5) > 0.1 {
		t.Errorf("Expected mean near 5, got %v", mean)
	}

	variance := ReferencePopulationVariance(sample)
	if math.Abs(variance-9) > 0.5 {
		t.Errorf("Expected variance near 9, got %v", variance)
	}
}

func TestUniformInts(t *testing.T) {
	for _, v := range UniformInts(1000, -3, 4, 5) {
		if v < -3 || v >= 4 {
			t.Fatalf("Value %d outside [-3, 4)", v)
		}
	}
}

func TestReferenceStatistics(t *testing.T) {
	x := []float64{2, 1}
	y := []float64{4, 9}

	if got := ReferencePopulationVariance(x); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if got := ReferenceSampleStdDev(x); math.Abs(got-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("Expected sqrt(0.5), got %v", got)
	}
	if got := ReferencePopulationCovariance(x, y); math.Abs(got+1.25) > 1e-12 {
		t.Errorf("Expected -1.25, got %v", got)
	}
}

func TestDecimals(t *testing.T) {
	values := Decimals(1.5, -2.25)
	if values[0].String() != "1.5" || values[1].String() != "-2.25" {
		t.Errorf("Unexpected decimals %v", values)
	}
}
