package logic

import "github.com/tensorlogic-ml/tensorlogic/internal/embedding"

// SeedDefaults populates the table with six canned inference rules.
//
// The premise and conclusion concept lists are literal structural tokens
// ("if", "then", "premise", ...), not semantically grounded logic: their
// purpose is to exercise the contraction and similarity machinery with
// stable, named tensors. Re-seeding overwrites the same six IDs in place.
func SeedDefaults(t *Table, store *embedding.Store) {
	t.Create(store, "modus_ponens",
		[]string{"if", "then", "premise"},
		[]string{"conclusion"},
		Deductive, 0.9)

	t.Create(store, "modus_tollens",
		[]string{"if", "then", "not", "conclusion"},
		[]string{"not", "premise"},
		Deductive, 0.85)

	t.Create(store, "transitivity",
		[]string{"first", "second", "third"},
		[]string{"first", "third"},
		Deductive, 0.8)

	t.Create(store, "conjunction_introduction",
		[]string{"first", "second"},
		[]string{"first", "and", "second"},
		Deductive, 0.9)

	t.Create(store, "disjunction_introduction",
		[]string{"first"},
		[]string{"first", "or", "second"},
		Deductive, 0.85)

	t.Create(store, "hypothetical_syllogism",
		[]string{"if", "then", "chain"},
		[]string{"conditional", "conclusion"},
		Deductive, 0.8)
}
