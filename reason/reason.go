// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reason provides the public API of the tensor logic engine.
//
// The engine performs symbolic logical inference — rule-based deduction,
// bounded chain inference and analogical reasoning — entirely through
// numeric tensor operations over concept embeddings.
//
// # Basic Usage
//
//	engine, err := reason.New(reason.WithDefaultRules())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.Reason(reason.Text("all humans are mortal"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range result.Conclusions {
//	    fmt.Printf("%.2f %s\n", c.Confidence, c.Statement)
//	}
//
// # Concurrency
//
// All entry points are synchronous pure computation. An engine owns its
// embedding cache and rule table exclusively; prefer one engine per
// reasoning session. The embedding store is internally synchronized, so
// read-mostly sharing (concurrent Reason calls against a fixed rule table)
// is also safe.
package reason

import (
	"log/slog"

	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/reason"
)

// Engine performs tensor logic inference.
type Engine = reason.Engine

// Option configures engine construction.
type Option = reason.Option

// Input is reasoner input: free text or pre-resolved embeddings.
type Input = reason.Input

// Result is the output contract of Reason and ChainInference.
type Result = reason.Result

// Operation traces one tensor operation performed during reasoning.
type Operation = reason.Operation

// OperationKind names the traced tensor operation.
type OperationKind = reason.OperationKind

// Operation kinds.
const (
	OpContraction OperationKind = reason.OpContraction
	OpProduct     OperationKind = reason.OpProduct
	OpSum         OperationKind = reason.OpSum
	OpTranspose   OperationKind = reason.OpTranspose
	OpInference   OperationKind = reason.OpInference
)

// Conclusion is a concept-level finding extracted from an inference result.
type Conclusion = reason.Conclusion

// Uncertainty summarizes how unsettled a result is.
type Uncertainty = reason.Uncertainty

// Analogy is the output contract of Engine.Analogy.
type Analogy = reason.Analogy

// Mapping pairs a source concept with a target concept in an analogy.
type Mapping = reason.Mapping

// DefaultMaxChainSteps bounds ChainInference when callers have no limit of
// their own.
const DefaultMaxChainSteps = reason.DefaultMaxChainSteps

// New creates an engine. With no options it uses a 128-dimension
// deterministic hash embedding source, an empty rule table and a silent
// logger.
func New(opts ...Option) (*Engine, error) {
	return reason.New(opts...)
}

// Text wraps free text as reasoner input.
func Text(s string) Input {
	return reason.Text(s)
}

// Concepts wraps pre-resolved embeddings as reasoner input.
func Concepts(embs ...embedding.Embedding) Input {
	return reason.Concepts(embs...)
}

// WithDimension sets the embedding dimension of the default hash source.
func WithDimension(dimension int) Option {
	return reason.WithDimension(dimension)
}

// WithSource replaces the default embedding source.
func WithSource(source embedding.Source) Option {
	return reason.WithSource(source)
}

// WithLogger sets the engine's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return reason.WithLogger(logger)
}

// WithDefaultRules seeds the six canned inference rules at construction.
func WithDefaultRules() Option {
	return reason.WithDefaultRules()
}
