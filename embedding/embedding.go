// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package embedding provides concept embeddings for the tensor logic engine.
//
// An Embedding is a fixed-dimension unit vector representing a concept in a
// shared vector space. Vectors come from a Source — by default a
// deterministic hash-seeded generator that stands in for a learned model —
// and are memoized in a Store for the lifetime of an engine instance.
//
// Example:
//
//	source, _ := embedding.NewHashSource(embedding.DefaultDimension)
//	store := embedding.NewStore(source)
//
//	e := store.Create("socrates", "philosophy")
//	// e.Vector is a deterministic 128-dimension unit vector
//
// To swap in a different representation, implement Source and hand it to the
// store (or to reason.New via reason.WithSource). TokenSource, which embeds
// concepts through BPE token features, is one such alternative.
package embedding

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
)

// DefaultDimension is the embedding vector length used when no dimension is
// configured.
const DefaultDimension = embedding.DefaultDimension

// Embedding is a fixed-dimension unit vector representing a concept.
type Embedding = embedding.Embedding

// Source produces concept vectors; it is the substitution point for a real
// learned embedding model.
type Source = embedding.Source

// Store memoizes embeddings by concept string. Safe for concurrent use.
type Store = embedding.Store

// NewStore creates a Store backed by the given source.
func NewStore(source Source) *Store {
	return embedding.NewStore(source)
}

// NewHashSource creates the deterministic hash-seeded placeholder source.
// Dimension must be positive.
func NewHashSource(dimension int) (Source, error) {
	return embedding.NewHashSource(dimension)
}

// NewTokenSource creates a source that embeds concepts through BPE token
// features. Supported encodings: "cl100k_base", "p50k_base".
func NewTokenSource(encodingName string, dimension int) (Source, error) {
	return embedding.NewTokenSource(encodingName, dimension)
}
