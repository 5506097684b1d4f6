package logic

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/tensor"
)

// Kind classifies how a rule's conclusion relates to its premise.
type Kind int

// Supported rule kinds.
const (
	Deductive Kind = iota
	Inductive
	Abductive
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Deductive:
		return "deductive"
	case Inductive:
		return "inductive"
	case Abductive:
		return "abductive"
	default:
		return "unknown"
	}
}

// DefaultRuleConfidence is assigned to rules built through Table.Create.
const DefaultRuleConfidence = 0.8

// Rule is a stored premise-tensor to conclusion-tensor pair used to drive
// inference. Weight and Confidence are both in [0, 1]; their product scales
// the confidence of any operation the rule produces.
type Rule struct {
	ID         string
	Premise    tensor.Tensor
	Conclusion tensor.Tensor
	Weight     float64
	Confidence float64
	Kind       Kind
}

// Table is an insertion-ordered rule registry. Re-adding a rule with an
// existing ID replaces it in place, keeping its original position. Rules are
// never removed during normal operation.
//
// Table is not safe for concurrent mutation; the engine serializes access.
type Table struct {
	rules map[string]Rule
	order []string
}

// NewTable creates an empty rule table.
func NewTable() *Table {
	return &Table{rules: make(map[string]Rule)}
}

// Add inserts a rule, overwriting any prior rule with the same ID.
func (t *Table) Add(rule Rule) {
	if _, exists := t.rules[rule.ID]; !exists {
		t.order = append(t.order, rule.ID)
	}
	t.rules[rule.ID] = rule
}

// Create builds a rule from concept lists: each concept is resolved through
// the store and the resulting vectors are stacked into premise and conclusion
// tensors. Confidence is fixed at DefaultRuleConfidence; weight is clamped to
// [0, 1]. The rule is stored and returned.
func (t *Table) Create(store *embedding.Store, id string, premiseConcepts, conclusionConcepts []string, kind Kind, weight float64) Rule {
	if weight < 0 {
		weight = 0
	} else if weight > 1 {
		weight = 1
	}

	rule := Rule{
		ID:         id,
		Premise:    stackConcepts(store, premiseConcepts),
		Conclusion: stackConcepts(store, conclusionConcepts),
		Weight:     weight,
		Confidence: DefaultRuleConfidence,
		Kind:       kind,
	}
	t.Add(rule)
	return rule
}

// Get returns the rule with the given ID, if present.
func (t *Table) Get(id string) (Rule, bool) {
	rule, ok := t.rules[id]
	return rule, ok
}

// Rules returns a snapshot of all rules in insertion order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rules[id])
	}
	return out
}

// Len returns the number of stored rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// stackConcepts resolves concepts through the store and stacks their vectors.
func stackConcepts(store *embedding.Store, concepts []string) tensor.Tensor {
	vectors := make([][]float64, 0, len(concepts))
	for _, concept := range concepts {
		vectors = append(vectors, store.Create(concept, "").Vector)
	}
	return tensor.Stack(vectors)
}
