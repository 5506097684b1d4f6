package reason

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// Input is what the reasoners accept: free text or an explicit embedding
// list. It is a closed sum; construct values with Text or Concepts.
type Input interface {
	resolve(e *Engine) []embedding.Embedding
}

// Text wraps free text as reasoner input. The text is tokenized into
// lowercase concept tokens (alphanumeric runs of three or more characters,
// deduplicated, capped at ten) and each token is resolved through the
// embedding store.
func Text(s string) Input {
	return textInput(s)
}

type textInput string

func (t textInput) resolve(e *Engine) []embedding.Embedding {
	tokens := e.words.Tokenize(string(t))
	embs := make([]embedding.Embedding, 0, len(tokens))
	for _, token := range tokens {
		embs = append(embs, e.store.Create(token, ""))
	}
	return embs
}

// Concepts wraps pre-resolved embeddings as reasoner input; they are used
// as-is, bypassing tokenization and the store.
func Concepts(embs ...embedding.Embedding) Input {
	return conceptInput(embs)
}

type conceptInput []embedding.Embedding

func (c conceptInput) resolve(*Engine) []embedding.Embedding {
	return c
}

// stackEmbeddings stacks embedding vectors into a rank-2 input tensor.
func stackEmbeddings(embs []embedding.Embedding) tensor.Tensor {
	vectors := make([][]float64, 0, len(embs))
	for _, e := range embs {
		vectors = append(vectors, e.Vector)
	}
	return tensor.Stack(vectors)
}
