// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// Type aliases for public API

// Tensor is a flat, row-major numeric buffer tagged with a shape and rank.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 128} represents two stacked 128-dimension embeddings.
type Shape = tensor.Shape

// Sentinel errors.
var (
	// ErrDimensionMismatch reports a rank-2 contraction with incompatible
	// inner dimensions.
	ErrDimensionMismatch = tensor.ErrDimensionMismatch

	// ErrInvalidTensor reports a malformed tensor.
	ErrInvalidTensor = tensor.ErrInvalidTensor
)

// Construction

// New creates a validated tensor from a data buffer and shape.
//
// Example:
//
//	t, err := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func New(data []float64, shape Shape) (Tensor, error) {
	return tensor.New(data, shape)
}

// Empty returns the canonical empty tensor: shape [0], no data, rank 0.
func Empty() Tensor {
	return tensor.Empty()
}

// Stack stacks N equal-length vectors into a rank-2 tensor of shape [N, D].
//
// Example:
//
//	t := tensor.Stack([][]float64{{1, 0}, {0, 1}}) // Shape: [2, 2]
func Stack(vectors [][]float64) Tensor {
	return tensor.Stack(vectors)
}

// Operations

// Contract performs tensor contraction: matrix multiplication for rank-2
// operands, a truncated elementwise product otherwise.
func Contract(a, b Tensor) (Tensor, error) {
	return tensor.Contract(a, b)
}

// And is the fuzzy conjunction operator. It delegates to Contract; see the
// package documentation for the rank-2 caveat.
func And(a, b Tensor) (Tensor, error) {
	return tensor.And(a, b)
}

// Or is the fuzzy disjunction operator: elementwise max, L2-normalized.
func Or(a, b Tensor) Tensor {
	return tensor.Or(a, b)
}

// Not is the fuzzy negation operator: elementwise 1 - x.
func Not(a Tensor) Tensor {
	return tensor.Not(a)
}

// Implies is the fuzzy implication operator: elementwise max(1-a, b).
func Implies(a, b Tensor) Tensor {
	return tensor.Implies(a, b)
}

// CosineSimilarity computes cosine similarity over the overlapping prefix of
// two tensors' buffers. Result is in [-1, 1]; 0 for zero-norm operands.
func CosineSimilarity(a, b Tensor) float64 {
	return tensor.CosineSimilarity(a, b)
}

// Mean averages tensors elementwise with equal weight.
func Mean(tensors ...Tensor) Tensor {
	return tensor.Mean(tensors...)
}
