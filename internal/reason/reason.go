package reason

import (
	"fmt"
	"math"
	"sort"

	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// Limits on conclusion extraction.
const (
	maxConclusions         = 3
	conclusionThreshold    = 0.3
	defaultConfidence      = 0.5
	fusionSimilarityWeight = 0.6
	fusionConfidenceWeight = 0.4
)

// Reason runs one full inference pass over the input: rule matching by
// similarity, rule application by contraction, a chained implication pass,
// and synthesis of a unified tensor with conclusions and a fusion score.
//
// Individual rule applications that fail (e.g. a contraction dimension
// mismatch against a stacked premise) are logged at warn level and skipped;
// one bad rule never aborts the pass.
func (e *Engine) Reason(input Input) (*Result, error) {
	embs := input.resolve(e)
	inputTensor := stackEmbeddings(embs)

	steps := []string{
		fmt.Sprintf("resolved %d concept embeddings", len(embs)),
		fmt.Sprintf("stacked input tensor with shape %v", inputTensor.Shape),
	}

	matched := e.matchRules(inputTensor)
	steps = append(steps, fmt.Sprintf("rule matching produced %d operations", len(matched)))

	inferred := e.chainPass(inputTensor)
	steps = append(steps, fmt.Sprintf("chained implication produced %d operations", len(inferred)))

	ops := append(matched, inferred...)
	return e.synthesize(inputTensor, embs, ops, steps), nil
}

// matchRules is the per-rule match-and-apply pass: any rule whose premise has
// cosine similarity strictly above matchThreshold to the input is applied by
// contracting the input with the premise and truncating the result to the
// conclusion's length.
func (e *Engine) matchRules(input tensor.Tensor) []Operation {
	var ops []Operation
	for _, rule := range e.table.Rules() {
		similarity := tensor.CosineSimilarity(input, rule.Premise)
		if similarity <= matchThreshold {
			continue
		}

		output, err := tensor.Contract(input, rule.Premise)
		if err != nil {
			e.logger.Warn("rule application failed",
				"rule", rule.ID,
				"similarity", similarity,
				"error", err,
			)
			continue
		}
		output = truncateTo(output, rule.Conclusion)

		e.logger.Debug("rule applied", "rule", rule.ID, "similarity", similarity)
		ops = append(ops, Operation{
			Kind:       OpContraction,
			Inputs:     []tensor.Tensor{input, rule.Premise},
			Output:     output,
			Notation:   "ij,jk->ik",
			Confidence: rule.Confidence * rule.Weight,
		})
	}
	return ops
}

// chainPass walks the rule table in insertion order with a running tensor:
// any rule whose premise is similar (strictly above chainThreshold) to the
// running tensor contributes Implies(premise, conclusion) and the running
// tensor advances to that inferred tensor.
func (e *Engine) chainPass(input tensor.Tensor) []Operation {
	running := input
	var ops []Operation
	for _, rule := range e.table.Rules() {
		similarity := tensor.CosineSimilarity(running, rule.Premise)
		if similarity <= chainThreshold {
			continue
		}

		inferred := tensor.Implies(rule.Premise, rule.Conclusion)
		ops = append(ops, Operation{
			Kind:       OpInference,
			Inputs:     []tensor.Tensor{rule.Premise, rule.Conclusion},
			Output:     inferred,
			Confidence: similarity * rule.Confidence,
		})
		running = inferred
	}
	return ops
}

// synthesize folds the accumulated operations into the final result: the
// unified tensor is the equal-weight elementwise mean of all operation
// outputs, confidence is the mean operation confidence, and conclusions are
// extracted by projecting each input embedding onto the unified tensor.
// With zero operations everything degrades to the documented defaults.
func (e *Engine) synthesize(input tensor.Tensor, embs []embedding.Embedding, ops []Operation, steps []string) *Result {
	unified := tensor.Empty()
	confidence := defaultConfidence
	fusion := defaultConfidence

	if len(ops) > 0 {
		outputs := make([]tensor.Tensor, len(ops))
		var sum float64
		for i, op := range ops {
			outputs[i] = op.Output
			sum += op.Confidence
		}
		meanConfidence := sum / float64(len(ops))

		unified = tensor.Mean(outputs...)
		confidence = meanConfidence
		fusion = fusionSimilarityWeight*tensor.CosineSimilarity(input, unified) +
			fusionConfidenceWeight*meanConfidence
	}
	steps = append(steps, fmt.Sprintf("unified %d operation outputs", len(ops)))

	return &Result{
		Confidence:  confidence,
		Steps:       steps,
		Conclusions: e.conclusions(embs, unified),
		Uncertainty: uncertaintyFor(confidence),
		Operations:  ops,
		Embeddings:  embs,
		Unified:     unified,
		FusionScore: fusion,
	}
}

// conclusions projects each input embedding onto the unified tensor and
// emits one conclusion per surviving activation: top three by activation,
// strictly above conclusionThreshold. With no survivors a single default
// conclusion at the default confidence is returned.
func (e *Engine) conclusions(embs []embedding.Embedding, unified tensor.Tensor) []Conclusion {
	type activation struct {
		concept string
		score   float64
	}

	activations := make([]activation, 0, len(embs))
	for _, emb := range embs {
		activations = append(activations, activation{
			concept: emb.Concept,
			score:   project(emb, unified),
		})
	}
	sort.SliceStable(activations, func(i, j int) bool {
		return activations[i].score > activations[j].score
	})
	if len(activations) > maxConclusions {
		activations = activations[:maxConclusions]
	}

	concepts := make([]string, 0, len(embs))
	for _, emb := range embs {
		concepts = append(concepts, emb.Concept)
	}

	var conclusions []Conclusion
	for _, a := range activations {
		if a.score <= conclusionThreshold {
			continue
		}
		conclusions = append(conclusions, Conclusion{
			Statement:  fmt.Sprintf("concept %q is strongly supported by the inference", a.concept),
			Confidence: a.score,
			Evidence:   concepts,
			Reasoning:  "projection of the concept embedding onto the unified inference tensor",
			Implications: []string{
				fmt.Sprintf("%q participates in the dominant inference pattern", a.concept),
			},
		})
	}

	if len(conclusions) == 0 {
		conclusions = append(conclusions, Conclusion{
			Statement:  "no concept activation exceeded the conclusion threshold",
			Confidence: defaultConfidence,
			Evidence:   concepts,
			Reasoning:  "tensor reasoning completed without strongly activated concepts",
		})
	}
	return conclusions
}

// project computes an embedding's activation against the unified tensor: the
// dot product over the overlapping prefix, normalized by the embedding's own
// norm. Returns 0 for zero-norm embeddings.
func project(emb embedding.Embedding, unified tensor.Tensor) float64 {
	n := len(emb.Vector)
	if len(unified.Data) < n {
		n = len(unified.Data)
	}
	var dot, norm float64
	for i, v := range emb.Vector {
		if i < n {
			dot += v * unified.Data[i]
		}
		norm += v * v
	}
	if norm == 0 {
		return 0
	}
	return dot / math.Sqrt(norm)
}

// truncateTo slices an operation output down to the conclusion's length,
// adopting the conclusion's shape and rank. Outputs already short enough are
// returned unchanged.
func truncateTo(output, conclusion tensor.Tensor) tensor.Tensor {
	if len(output.Data) <= len(conclusion.Data) {
		return output
	}
	return tensor.Tensor{
		Shape: conclusion.Shape.Clone(),
		Data:  output.Data[:len(conclusion.Data)],
		Rank:  conclusion.Rank,
	}
}
