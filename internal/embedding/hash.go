package embedding

import (
	"fmt"
	"math"
)

// HashSource is the deterministic placeholder embedding source.
//
// It derives a numeric seed from a 32-bit signed string hash of
// concept+domain and fills the vector with sin(seed+i)*0.5+0.5 before
// L2-normalizing. Same input always yields the same vector; different inputs
// yield effectively uncorrelated vectors. It stands in for a learned model
// behind the Source interface and has no semantic content.
type HashSource struct {
	dimension int
}

// NewHashSource creates a HashSource producing vectors of the given length.
// Dimension must be positive.
func NewHashSource(dimension int) (*HashSource, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("embedding: dimension must be positive, got %d", dimension)
	}
	return &HashSource{dimension: dimension}, nil
}

// Embed generates the deterministic pseudo-random unit vector for a concept.
func (s *HashSource) Embed(concept, domain string) []float64 {
	seed := stringSeed(concept + domain)
	v := make([]float64, s.dimension)
	for i := range v {
		v[i] = math.Sin(seed+float64(i))*0.5 + 0.5
	}
	normalize(v)
	return v
}

// Dimension returns the configured vector length.
func (s *HashSource) Dimension() int {
	return s.dimension
}

// stringSeed hashes a string into a non-negative float seed using the classic
// h = h*31 + c rolling hash over a 32-bit signed accumulator (wrap-around
// included), matching the reference generator exactly.
func stringSeed(s string) float64 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	return math.Abs(float64(h))
}

// normalize scales v in place to unit Euclidean norm. Zero vectors are left
// untouched.
func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range v {
		v[i] *= inv
	}
}
