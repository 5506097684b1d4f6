// Package reason implements the tensor logic reasoners: single-step rule
// inference, bounded chain inference and analogical mapping, all expressed as
// numeric tensor operations over concept embeddings.
package reason

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tensorlogic-ml/tensorlogic/internal/embedding"
	"github.com/tensorlogic-ml/tensorlogic/internal/logic"
	"github.com/tensorlogic-ml/tensorlogic/internal/tokenizer"
)

// Matching thresholds. Both comparisons are strict: a rule at exactly the
// threshold does not fire.
const (
	// matchThreshold gates the rule-matching pass.
	matchThreshold = 0.5
	// chainThreshold gates the chained-inference pass.
	chainThreshold = 0.3
)

// DefaultMaxChainSteps bounds ChainInference when the caller passes no
// explicit limit of their own.
const DefaultMaxChainSteps = 5

// Engine performs symbolic logical inference through numeric tensor
// operations over concept embeddings.
//
// An engine owns its embedding store and rule table exclusively; there is no
// cross-instance shared state. All entry points are synchronous pure
// computation — callers wanting timeouts or cancellation wrap the engine
// externally. Give each reasoning session its own engine, or rely on the
// store's internal locking plus the engine's read-mostly rule access for
// shared use.
type Engine struct {
	store  *embedding.Store
	table  *logic.Table
	words  *tokenizer.WordTokenizer
	logger *slog.Logger
}

// Option configures engine construction.
type Option func(*config)

type config struct {
	dimension    int
	source       embedding.Source
	logger       *slog.Logger
	defaultRules bool
}

// WithDimension sets the embedding dimension of the default hash source.
// Ignored when WithSource is also given. Must be positive.
func WithDimension(dimension int) Option {
	return func(c *config) {
		c.dimension = dimension
	}
}

// WithSource replaces the default deterministic hash source with another
// embedding source (e.g. a token-feature source or a learned model adapter).
func WithSource(source embedding.Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithLogger sets the engine's structured logger. The default discards all
// output; per-rule application failures surface here at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDefaultRules seeds the six canned inference rules at construction.
func WithDefaultRules() Option {
	return func(c *config) {
		c.defaultRules = true
	}
}

// New creates an engine. With no options it uses a 128-dimension hash
// embedding source, an empty rule table, and a silent logger.
func New(opts ...Option) (*Engine, error) {
	cfg := config{dimension: embedding.DefaultDimension}
	for _, opt := range opts {
		opt(&cfg)
	}

	source := cfg.source
	if source == nil {
		var err error
		source, err = embedding.NewHashSource(cfg.dimension)
		if err != nil {
			return nil, fmt.Errorf("reason: %w", err)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	e := &Engine{
		store:  embedding.NewStore(source),
		table:  logic.NewTable(),
		words:  tokenizer.NewWordTokenizer(),
		logger: logger,
	}
	if cfg.defaultRules {
		logic.SeedDefaults(e.table, e.store)
	}
	return e, nil
}

// CreateEmbedding resolves a concept to its cached embedding, generating it
// on first request. The domain is ignored when the concept is already cached.
func (e *Engine) CreateEmbedding(concept, domain string) embedding.Embedding {
	return e.store.Create(concept, domain)
}

// AddRule inserts a rule, overwriting any prior rule with the same ID.
func (e *Engine) AddRule(rule logic.Rule) {
	e.table.Add(rule)
}

// CreateRule builds, stores and returns a rule from premise and conclusion
// concept lists.
func (e *Engine) CreateRule(id string, premiseConcepts, conclusionConcepts []string, kind logic.Kind, weight float64) logic.Rule {
	return e.table.Create(e.store, id, premiseConcepts, conclusionConcepts, kind, weight)
}

// SeedDefaultRules populates the table with the six canned inference rules.
func (e *Engine) SeedDefaultRules() {
	logic.SeedDefaults(e.table, e.store)
}

// Rules returns a snapshot of the rule table in insertion order.
func (e *Engine) Rules() []logic.Rule {
	return e.table.Rules()
}

// Embeddings returns a snapshot of the embedding cache in insertion order.
func (e *Engine) Embeddings() []embedding.Embedding {
	return e.store.Snapshot()
}

// Store returns the engine's embedding store.
func (e *Engine) Store() *embedding.Store {
	return e.store
}

// discardHandler is a slog.Handler that drops everything.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
