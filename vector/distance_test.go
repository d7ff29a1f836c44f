package vector

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3})
		if err != nil {
			t.Fatalf("CosineSimilarity failed: %v", err)
		}
		if math.Abs(sim-1) > tolerance {
			t.Fatalf("CosineSimilarity(v,v) = %v, want 1", sim)
		}
	})

	t.Run("orthogonal", func(t *testing.T) {
		sim, err := CosineSimilarity([]int{1, 0}, []int{0, 1})
		if err != nil || sim != 0 {
			t.Fatalf("CosineSimilarity(x,y) = %v, %v; want 0, nil", sim, err)
		}
	})

	t.Run("opposite", func(t *testing.T) {
		sim, err := CosineSimilarity([]float32{1, 1}, []float32{-1, -1})
		if err != nil {
			t.Fatalf("CosineSimilarity failed: %v", err)
		}
		if math.Abs(sim+1) > tolerance {
			t.Fatalf("CosineSimilarity(v,-v) = %v, want -1", sim)
		}
	})

	t.Run("scale invariant", func(t *testing.T) {
		sim, err := CosineSimilarity([]int64{1, 2}, []int64{2, 4})
		if err != nil {
			t.Fatalf("CosineSimilarity failed: %v", err)
		}
		if math.Abs(sim-1) > tolerance {
			t.Fatalf("CosineSimilarity(v,2v) = %v, want 1", sim)
		}
	})

	t.Run("zero vector is NaN", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{0, 0}, []float64{1, 2})
		if err != nil {
			t.Fatalf("CosineSimilarity failed: %v", err)
		}
		if !math.IsNaN(sim) {
			t.Fatalf("CosineSimilarity(0,v) = %v, want NaN", sim)
		}
	})
}

func TestEuclideanDistance(t *testing.T) {
	d, err := EuclideanDistance([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		t.Fatalf("EuclideanDistance failed: %v", err)
	}
	if d != 5 {
		t.Fatalf("EuclideanDistance((0,0),(3,4)) = %v, want 5", d)
	}

	a := []float64{1.5, -2, 7}
	b := []float64{0.25, 3, -1}
	ab, _ := EuclideanDistance(a, b)
	ba, _ := EuclideanDistance(b, a)
	if ab != ba {
		t.Fatalf("EuclideanDistance not symmetric: %v vs %v", ab, ba)
	}
	if self, _ := EuclideanDistance(a, a); self != 0 {
		t.Fatalf("EuclideanDistance(v,v) = %v, want 0", self)
	}
}

func TestEuclideanSimilarity(t *testing.T) {
	sim, err := EuclideanSimilarity([]int{4, 5}, []int{4, 5})
	if err != nil || sim != 1 {
		t.Fatalf("EuclideanSimilarity(v,v) = %v, %v; want 1, nil", sim, err)
	}
	sim, err = EuclideanSimilarity([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		t.Fatalf("EuclideanSimilarity failed: %v", err)
	}
	if math.Abs(sim-1.0/6) > tolerance {
		t.Fatalf("EuclideanSimilarity((0,0),(3,4)) = %v, want 1/6", sim)
	}
	far, _ := EuclideanSimilarity([]float64{0}, []float64{100})
	if far <= 0 || far >= sim {
		t.Fatalf("EuclideanSimilarity should decrease with distance: got %v (near %v)", far, sim)
	}
}

func TestInvalidArgument(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
	}{
		{name: "empty", a: nil, b: nil},
		{name: "mismatch", a: []float64{1, 2, 3}, b: []float64{1, 2}},
		{name: "one empty", a: []float64{1}, b: []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CosineSimilarity(tc.a, tc.b); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("CosineSimilarity err = %v, want ErrInvalidArgument", err)
			}
			if _, err := EuclideanDistance(tc.a, tc.b); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("EuclideanDistance err = %v, want ErrInvalidArgument", err)
			}
			if _, err := EuclideanSimilarity(tc.a, tc.b); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("EuclideanSimilarity err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestFloat32Variants(t *testing.T) {
	sim, err := CosineSimilarity32([]float32{1, 0}, []float32{1, 0})
	if err != nil {
		t.Fatalf("CosineSimilarity32 failed: %v", err)
	}
	if math.Abs(sim-1) > 1e-6 {
		t.Fatalf("CosineSimilarity32(a,a) = %v, want 1", sim)
	}
	sim, err = CosineSimilarity32([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("CosineSimilarity32 failed: %v", err)
	}
	if math.Abs(sim) > 1e-6 {
		t.Fatalf("CosineSimilarity32(x,y) = %v, want 0", sim)
	}
	if sim, _ := CosineSimilarity32([]float32{0, 0}, []float32{0, 1}); !math.IsNaN(sim) {
		t.Fatalf("CosineSimilarity32 with zero vector = %v, want NaN", sim)
	}

	d, err := L2Distance32([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		t.Fatalf("L2Distance32 failed: %v", err)
	}
	if math.Abs(d-5) > 1e-6 {
		t.Fatalf("L2Distance32((0,0),(3,4)) = %v, want 5", d)
	}
	if _, err := L2Distance32([]float32{1}, []float32{1, 2}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("L2Distance32 err = %v, want ErrInvalidArgument", err)
	}
}

func TestCosineSimilarity32AgreesWithExact(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
	}{
		{"skewed", []float32{1, 2, 3, 4}, []float32{4, 3, 2, 1}},
		{"negative", []float32{-1.5, 0.25, 2}, []float32{0.5, -3, 1}},
		{"scaled", []float32{0.1, 0.2}, []float32{10, 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := CosineSimilarity(tc.a, tc.b)
			if err != nil {
				t.Fatalf("CosineSimilarity failed: %v", err)
			}
			got, err := CosineSimilarity32(tc.a, tc.b)
			if err != nil {
				t.Fatalf("CosineSimilarity32 failed: %v", err)
			}
			if math.Abs(got-want) > 1e-5 {
				t.Fatalf("CosineSimilarity32 = %v, want %v", got, want)
			}
		})
	}
}
