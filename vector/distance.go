package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/viant/vec/search"
	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument reports vectors that cannot be compared.
var ErrInvalidArgument = errors.New("vector: vectors must be non-empty and of the same size")

// Number is the element type accepted by the vector metrics.
type Number interface {
	constraints.Integer | constraints.Float
}

func checkDims(a, b int) error {
	if a != b || a == 0 {
		return fmt.Errorf("%w: %d vs %d", ErrInvalidArgument, a, b)
	}
	return nil
}

// CosineSimilarity computes the cosine of the angle between a and b. The
// result is not clamped: when either vector has zero magnitude it is NaN.
func CosineSimilarity[T Number](a, b []T) (float64, error) {
	if err := checkDims(len(a), len(b)); err != nil {
		return 0, err
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

// EuclideanDistance computes the square root of the sum of squared
// differences between a and b.
func EuclideanDistance[T Number](a, b []T) (float64, error) {
	if err := checkDims(len(a), len(b)); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// EuclideanSimilarity maps the Euclidean distance into (0, 1] as
// 1 / (1 + distance). Identical vectors score 1.
func EuclideanSimilarity[T Number](a, b []T) (float64, error) {
	d, err := EuclideanDistance(a, b)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + d), nil
}

// CosineSimilarity32 is the float32 embedding variant of CosineSimilarity.
// It accumulates in float32, so results may differ from CosineSimilarity in
// the last few bits.
func CosineSimilarity32(a, b []float32) (float64, error) {
	if err := checkDims(len(a), len(b)); err != nil {
		return 0, err
	}
	va := search.Float32s(a)
	if va.Magnitude() == 0 || search.Float32s(b).Magnitude() == 0 {
		return math.NaN(), nil
	}
	return 1 - float64(va.CosineDistance(b)), nil
}

// L2Distance32 is the float32 embedding variant of EuclideanDistance.
func L2Distance32(a, b []float32) (float64, error) {
	if err := checkDims(len(a), len(b)); err != nil {
		return 0, err
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}
