// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer provides the text tokenizers used by the tensor logic
// engine: concept-token extraction for the reasoner and BPE encoding for the
// token-feature embedding source.
//
// Example:
//
//	words := tokenizer.NewWordTokenizer()
//	concepts := words.Tokenize("All humans are mortal")
//	// ["all", "humans", "are", "mortal"]
package tokenizer

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/tokenizer"
)

// Default word tokenization limits.
const (
	DefaultMinTokenLength = tokenizer.DefaultMinTokenLength
	DefaultMaxTokens      = tokenizer.DefaultMaxTokens
)

// WordTokenizer extracts lowercase alphanumeric concept tokens from text.
type WordTokenizer = tokenizer.WordTokenizer

// NewWordTokenizer creates a WordTokenizer with the default limits.
func NewWordTokenizer() *WordTokenizer {
	return tokenizer.NewWordTokenizer()
}

// TikToken wraps a BPE tokenizer (cl100k_base, p50k_base).
type TikToken = tokenizer.TikToken

// NewTikToken creates a TikToken tokenizer with the specified encoding.
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}
