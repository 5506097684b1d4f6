// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logic provides the rule table of the tensor logic engine.
//
// A Rule pairs a premise tensor with a conclusion tensor under a weight,
// confidence and kind; the reasoners fire rules whose premises are similar
// enough to the working tensor. Rules live in an insertion-ordered Table
// owned by one engine instance.
//
// Example:
//
//	source, _ := embedding.NewHashSource(embedding.DefaultDimension)
//	store := embedding.NewStore(source)
//	table := logic.NewTable()
//
//	table.Create(store, "modus_ponens",
//	    []string{"if", "then", "premise"},
//	    []string{"conclusion"},
//	    logic.Deductive, 0.9)
package logic

import (
	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/logic"
)

// Kind classifies how a rule's conclusion relates to its premise.
type Kind = logic.Kind

// Supported rule kinds.
const (
	Deductive Kind = logic.Deductive
	Inductive Kind = logic.Inductive
	Abductive Kind = logic.Abductive
)

// DefaultRuleConfidence is assigned to rules built through Table.Create.
const DefaultRuleConfidence = logic.DefaultRuleConfidence

// Rule is a stored premise-tensor to conclusion-tensor pair.
type Rule = logic.Rule

// Table is an insertion-ordered rule registry.
type Table = logic.Table

// NewTable creates an empty rule table.
func NewTable() *Table {
	return logic.NewTable()
}

// SeedDefaults populates a table with the six canned inference rules
// (modus ponens, modus tollens, transitivity, conjunction introduction,
// disjunction introduction, hypothetical syllogism).
func SeedDefaults(t *Table, store *embedding.Store) {
	logic.SeedDefaults(t, store)
}
