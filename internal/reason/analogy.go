package reason

import (
	"math"
	"sort"

	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// Analogy limits.
const (
	maxMappings      = 5
	mappingThreshold = 0.5
)

// Analogy computes structural similarity between two concept sets: a
// tensor-level cosine similarity, the strongest pairwise concept mappings
// (full-length embedding cosines strictly above 0.5, sorted descending,
// capped at five), and a fused tensor averaging the two stacked inputs.
func (e *Engine) Analogy(source, target Input) (*Analogy, error) {
	sourceEmbs := source.resolve(e)
	targetEmbs := target.resolve(e)

	sourceTensor := stackEmbeddings(sourceEmbs)
	targetTensor := stackEmbeddings(targetEmbs)

	var mappings []Mapping
	for _, s := range sourceEmbs {
		for _, t := range targetEmbs {
			similarity := cosineVectors(s.Vector, t.Vector)
			if similarity <= mappingThreshold {
				continue
			}
			mappings = append(mappings, Mapping{
				Source:     s.Concept,
				Target:     t.Concept,
				Similarity: similarity,
			})
		}
	}
	sort.SliceStable(mappings, func(i, j int) bool {
		return mappings[i].Similarity > mappings[j].Similarity
	})
	if len(mappings) > maxMappings {
		mappings = mappings[:maxMappings]
	}

	return &Analogy{
		Similarity: tensor.CosineSimilarity(sourceTensor, targetTensor),
		Mappings:   mappings,
		Inferred:   tensor.Mean(sourceTensor, targetTensor),
	}, nil
}

// cosineVectors is full-length cosine similarity between two equal-dimension
// vectors (unlike tensor.CosineSimilarity it does not truncate: embedding
// vectors from one source always share a dimension).
func cosineVectors(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
