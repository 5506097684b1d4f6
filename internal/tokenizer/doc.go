// Package tokenizer provides text tokenization for the tensor logic engine.
//
// Two tokenization strategies are implemented:
//   - WordTokenizer: lowercase alphanumeric word extraction used to turn free
//     text into concept tokens for the reasoner
//   - TikToken: BPE tokenizer (cl100k_base, p50k_base) used by the
//     token-feature embedding source
//
// Example usage:
//
//	words := tokenizer.NewWordTokenizer()
//	concepts := words.Tokenize("All humans are mortal")
//	// ["all", "humans", "are", "mortal"]
package tokenizer
