package reason

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// OperationKind names the tensor operation an Operation record traces.
type OperationKind string

// Operation kinds.
const (
	OpContraction OperationKind = "contraction"
	OpProduct     OperationKind = "product"
	OpSum         OperationKind = "sum"
	OpTranspose   OperationKind = "transpose"
	OpInference   OperationKind = "inference"
)

// Operation is a transient trace record of one tensor operation performed
// during reasoning. Operations are reported on the result but never
// persisted.
type Operation struct {
	Kind       OperationKind
	Inputs     []tensor.Tensor
	Output     tensor.Tensor
	Notation   string // restricted Einstein-summation form, e.g. "ij,jk->ik"
	Confidence float64
}

// Conclusion is a single concept-level finding extracted from the unified
// inference tensor.
type Conclusion struct {
	Statement    string
	Confidence   float64
	Evidence     []string
	Reasoning    string
	Implications []string
}

// Uncertainty describes how unsettled a result is: Value is 1 - confidence,
// Level buckets it for human consumption.
type Uncertainty struct {
	Value float64
	Level string
}

// uncertaintyFor buckets a confidence score.
func uncertaintyFor(confidence float64) Uncertainty {
	value := 1 - confidence
	level := "high"
	switch {
	case value < 0.25:
		level = "low"
	case value < 0.5:
		level = "moderate"
	}
	return Uncertainty{Value: value, Level: level}
}

// Result is the engine's output contract for Reason and ChainInference.
type Result struct {
	// Confidence is the mean operation confidence, or 0.5 when no rule
	// produced an operation.
	Confidence float64

	// Steps describes the reasoning pipeline stages in order.
	Steps []string

	// Conclusions are the surviving concept activations, or a single
	// default conclusion when none survive.
	Conclusions []Conclusion

	// Uncertainty summarizes 1 - Confidence.
	Uncertainty Uncertainty

	// Operations traces every tensor operation performed, in order.
	Operations []Operation

	// Embeddings are the input concept embeddings used.
	Embeddings []embedding.Embedding

	// Unified is the elementwise average of all operation outputs; the
	// canonical empty tensor when there were none.
	Unified tensor.Tensor

	// FusionScore is the neural-symbolic fusion score in [0, 1]:
	// 0.6 * cos(input, unified) + 0.4 * mean operation confidence, or 0.5
	// when no operations were performed.
	FusionScore float64
}

// Mapping pairs a source concept with a target concept in an analogy.
type Mapping struct {
	Source     string
	Target     string
	Similarity float64
}

// Analogy is the output contract of Engine.Analogy.
type Analogy struct {
	// Similarity is the tensor-level cosine between source and target.
	Similarity float64

	// Mappings holds the strongest pairwise concept alignments, sorted by
	// descending similarity, at most five.
	Mappings []Mapping

	// Inferred is the elementwise average of the source and target tensors.
	Inferred tensor.Tensor
}
