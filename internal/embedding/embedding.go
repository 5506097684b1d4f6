package embedding

import "math"

// DefaultDimension is the embedding vector length used when no dimension is
// configured.
const DefaultDimension = 128

// Embedding is a fixed-dimension unit vector representing a concept in a
// shared vector space.
//
// Embeddings are immutable after creation: the store hands out copies of the
// cached vector header, and no engine operation writes through it.
type Embedding struct {
	Vector    []float64
	Dimension int
	Concept   string
	Domain    string
}

// Norm returns the Euclidean norm of the embedding vector.
func (e Embedding) Norm() float64 {
	var sum float64
	for _, v := range e.Vector {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Source produces concept vectors. It is the substitution point for a real
// learned embedding model: the tensor algebra and the reasoners only ever see
// the vectors a Source returns.
//
// Implementations must be deterministic per (concept, domain) pair and return
// vectors of a fixed length Dimension().
type Source interface {
	// Embed maps a concept (optionally qualified by a domain) to a vector.
	Embed(concept, domain string) []float64

	// Dimension returns the length of vectors produced by Embed.
	Dimension() int
}
