package reason

import (
	"fmt"
)

// ChainInference iterates the rule match-and-apply pass against a working
// tensor that starts as the input tensor. Each step keeps every matched
// operation and advances the working tensor to the single highest-confidence
// operation's output; a step with zero matches stops the chain immediately.
// maxSteps bounds the iteration count (negative values are treated as zero).
//
// All accumulated operations are then synthesized once against the ORIGINAL
// input tensor and embeddings — not the final working tensor — so the fusion
// score and conclusions measure support for the caller's input.
func (e *Engine) ChainInference(input Input, maxSteps int) (*Result, error) {
	if maxSteps < 0 {
		maxSteps = 0
	}

	embs := input.resolve(e)
	inputTensor := stackEmbeddings(embs)

	steps := []string{
		fmt.Sprintf("resolved %d concept embeddings", len(embs)),
		fmt.Sprintf("stacked input tensor with shape %v", inputTensor.Shape),
	}

	working := inputTensor
	var ops []Operation
	for step := 0; step < maxSteps; step++ {
		matched := e.matchRules(working)
		if len(matched) == 0 {
			steps = append(steps, fmt.Sprintf("step %d: no applicable rules, chain stopped", step+1))
			break
		}

		best := matched[0]
		for _, op := range matched[1:] {
			if op.Confidence > best.Confidence {
				best = op
			}
		}
		ops = append(ops, matched...)
		working = best.Output
		steps = append(steps, fmt.Sprintf("step %d: %d operations, advanced on confidence %.3f",
			step+1, len(matched), best.Confidence))
	}

	return e.synthesize(inputTensor, embs, ops, steps), nil
}
