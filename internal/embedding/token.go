package embedding

import (
	"fmt"
	"math"

	"github.com/tensorlogic-ml/tensorlogic/internal/tokenizer"
)

// TokenSource embeds concepts through BPE token IDs.
//
// Each concept is encoded with a tiktoken BPE vocabulary and the resulting
// token IDs are feature-hashed into a fixed-dimension vector: token id t at
// position p contributes sin(t+p)*0.5+0.5 to bucket t mod D. The vector is
// then L2-normalized. Like HashSource this is fully deterministic, but the
// features are shared between concepts with common sub-words, which gives
// related surface forms correlated vectors. It exists to exercise the Source
// substitution boundary with a representation one step closer to a learned
// model.
type TokenSource struct {
	tok       *tokenizer.TikToken
	dimension int
}

// NewTokenSource creates a TokenSource with the given BPE encoding and
// vector length. Dimension must be positive.
func NewTokenSource(encodingName string, dimension int) (*TokenSource, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("embedding: dimension must be positive, got %d", dimension)
	}
	tok, err := tokenizer.NewTikToken(encodingName)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	return &TokenSource{tok: tok, dimension: dimension}, nil
}

// Embed maps a concept to a vector of BPE token features.
func (s *TokenSource) Embed(concept, domain string) []float64 {
	text := concept
	if domain != "" {
		text = concept + " " + domain
	}

	v := make([]float64, s.dimension)
	for pos, id := range s.tok.Encode(text) {
		bucket := id % s.dimension
		v[bucket] += math.Sin(float64(id+pos))*0.5 + 0.5
	}
	normalize(v)
	return v
}

// Dimension returns the configured vector length.
func (s *TokenSource) Dimension() int {
	return s.dimension
}
