// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor algebra underlying the tensor logic
// engine.
//
// # Overview
//
// Tensors are flat, row-major float64 buffers tagged with a shape and rank.
// They hold stacked concept embeddings and intermediate inference results.
// The package provides:
//   - Tensor construction (New, Stack, Empty)
//   - Contraction, restricted to true matrix multiplication for rank-2
//     operands with a truncated elementwise-product fallback for all other
//     rank combinations
//   - Fuzzy logical operators (And, Or, Not, Implies) over [0,1]-valued data
//   - Cosine similarity and elementwise averaging
//
// # Basic Usage
//
//	a := tensor.Stack([][]float64{{1, 0}, {0, 1}})
//	b := tensor.Stack([][]float64{{5, 6}, {7, 8}})
//
//	c, err := tensor.Contract(a, b) // matrix multiply: [5, 6, 7, 8]
//	sim := tensor.CosineSimilarity(a, b)
//
// # Semantics to be aware of
//
// And delegates to Contract: on rank-2 operands it is matrix multiplication,
// not an elementwise conjunction. This mirrors the reference engine and is
// pinned by regression tests rather than silently corrected.
//
// A tensor's Data buffer is not required to match its Shape's element count;
// binary operations work over the overlapping prefix of the two buffers.
// All operations return new tensors and never mutate their operands.
package tensor
