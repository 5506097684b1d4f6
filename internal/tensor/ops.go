package tensor

import (
	"fmt"
	"math"
)

// Contract performs tensor contraction between two tensors.
//
// For two rank-2 tensors it is standard matrix multiplication:
// (M, K) @ (K, N) -> (M, N). Incompatible inner dimensions return
// ErrDimensionMismatch.
//
// For any other rank combination it degrades to an elementwise product over
// the overlapping prefix of the two buffers, with result rank
// min(a.Rank, b.Rank) and the first operand's shape. This is a structural
// simplification, not a general Einstein summation.
func Contract(a, b Tensor) (Tensor, error) {
	if a.Rank == 2 && b.Rank == 2 && len(a.Shape) == 2 && len(b.Shape) == 2 {
		m, k := a.Shape[0], a.Shape[1]
		kAlt, n := b.Shape[0], b.Shape[1]
		if k != kAlt {
			return Tensor{}, fmt.Errorf("%w: cannot contract [%d,%d] with [%d,%d]",
				ErrDimensionMismatch, m, k, kAlt, n)
		}
		if len(a.Data) < m*k || len(b.Data) < kAlt*n {
			return Tensor{}, fmt.Errorf("%w: buffer shorter than declared shape", ErrInvalidTensor)
		}
		out := make([]float64, m*n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += a.Data[i*k+kIdx] * b.Data[kIdx*n+j]
				}
				out[i*n+j] = sum
			}
		}
		return Tensor{Shape: Shape{m, n}, Data: out, Rank: 2}, nil
	}

	// Fallback: truncated elementwise product.
	n := overlap(a, b)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.Data[i] * b.Data[i]
	}
	rank := a.Rank
	if b.Rank < rank {
		rank = b.Rank
	}
	return Tensor{Shape: a.Shape.Clone(), Data: out, Rank: rank}, nil
}

// And is the fuzzy conjunction operator.
//
// NOTE: And delegates to Contract, so for rank-2 operands it performs matrix
// multiplication rather than an elementwise minimum. This mirrors the
// reference engine's behavior and is pinned by a regression test; changing it
// to a true elementwise fuzzy AND is a deliberate, separately-reviewed change.
func And(a, b Tensor) (Tensor, error) {
	return Contract(a, b)
}

// Or is the fuzzy disjunction operator: elementwise max over the overlapping
// prefix, L2-normalized. Commutative by construction.
func Or(a, b Tensor) Tensor {
	n := overlap(a, b)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Max(a.Data[i], b.Data[i])
	}
	normalizeL2(out)
	return Tensor{Shape: a.Shape.Clone(), Data: out, Rank: a.Rank}
}

// Not is the fuzzy negation operator: elementwise 1 - x. It is an involution
// for data in [0, 1]: Not(Not(t)) == t up to floating-point round-trip.
func Not(a Tensor) Tensor {
	out := make([]float64, len(a.Data))
	for i, v := range a.Data {
		out[i] = 1 - v
	}
	return Tensor{Shape: a.Shape.Clone(), Data: out, Rank: a.Rank}
}

// Implies is the fuzzy implication operator: elementwise max(1-a, b) over the
// overlapping prefix (the Kleene-Dienes form).
func Implies(a, b Tensor) Tensor {
	n := overlap(a, b)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Max(1-a.Data[i], b.Data[i])
	}
	return Tensor{Shape: a.Shape.Clone(), Data: out, Rank: a.Rank}
}

// CosineSimilarity computes the cosine of the angle between two tensors'
// buffers over their overlapping prefix. Returns 0 if either prefix has zero
// norm. Result is in [-1, 1]; self-similarity of a nonzero tensor is 1.
func CosineSimilarity(a, b Tensor) float64 {
	n := overlap(a, b)
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a.Data[i] * b.Data[i]
		normA += a.Data[i] * a.Data[i]
		normB += b.Data[i] * b.Data[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Mean averages tensors elementwise with equal weight. The result takes its
// length, shape and rank from the first tensor; shorter operands contribute
// zero beyond their buffer; the divisor is always the tensor count.
// Averaging zero tensors yields Empty().
func Mean(tensors ...Tensor) Tensor {
	if len(tensors) == 0 {
		return Empty()
	}
	first := tensors[0]
	out := make([]float64, len(first.Data))
	for _, t := range tensors {
		for i := 0; i < len(out) && i < len(t.Data); i++ {
			out[i] += t.Data[i]
		}
	}
	inv := 1 / float64(len(tensors))
	for i := range out {
		out[i] *= inv
	}
	return Tensor{Shape: first.Shape.Clone(), Data: out, Rank: first.Rank}
}

// overlap returns the length of the overlapping prefix of two buffers.
func overlap(a, b Tensor) int {
	if len(a.Data) < len(b.Data) {
		return len(a.Data)
	}
	return len(b.Data)
}

// normalizeL2 scales v in place to unit Euclidean norm. Zero vectors are
// left untouched.
func normalizeL2(v []float64) {
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		return
	}
	inv := 1 / math.Sqrt(norm)
	for i := range v {
		v[i] *= inv
	}
}
