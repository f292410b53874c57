package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/credo/internal/cache"
	"github.com/ppiankov/credo/internal/llm"
	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/reason"
)

// Session wires the provider, cache and engine for a sequence of runs over
// one configuration. Every run allocates its own record, lookup table and
// report; sessions share nothing mutable between concurrent invocations.
type Session struct {
	llm     *llm.Client
	engine  reason.Engine
	builder func() *Builder
	queries *QueryGenerator
	interp  *Interpreter
	verbose bool
}

// NewSession builds a session from configuration.
func NewSession(cfg *model.Config) (*Session, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
	}

	client := llm.NewClient(provider, store, cfg.Cache.TTL, cfg.Output.Verbose)

	engine := reason.NewHTTPEngine(cfg.Engine.BaseURL, reason.HTTPEngineOptions{
		Timeout:    time.Duration(cfg.Engine.Timeout) * time.Second,
		HTTPProxy:  cfg.HTTP.HTTPProxy,
		HTTPSProxy: cfg.HTTP.HTTPSProxy,
		NoProxy:    cfg.HTTP.NoProxy,
	})

	return NewSessionWith(client, engine, cfg.Output.Verbose), nil
}

// NewSessionWith builds a session from already-constructed collaborators.
func NewSessionWith(client *llm.Client, engine reason.Engine, verbose bool) *Session {
	return &Session{
		llm:     client,
		engine:  engine,
		builder: func() *Builder { return NewBuilder(client, engine, verbose) },
		queries: NewQueryGenerator(client, engine, verbose),
		interp:  NewInterpreter(client),
		verbose: verbose,
	}
}

// Build converts text into a validated belief set and a minimal report.
func (s *Session) Build(ctx context.Context, subject, source, text string) (*model.Report, error) {
	result, err := s.builder().Build(ctx, text)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		Subject:         subject,
		Source:          source,
		GeneratedAt:     time.Now().UTC(),
		Text:            text,
		BeliefSet:       result.BeliefSet.Content,
		FormulasKept:    result.Kept,
		FormulasDropped: result.Dropped,
	}, nil
}

// Analyze runs the full cycle: build, consistency check, query generation,
// execution, and interpretation.
func (s *Session) Analyze(ctx context.Context, subject, source, text string) (*model.Report, error) {
	report, err := s.Build(ctx, subject, source, text)
	if err != nil {
		return nil, err
	}
	beliefSet := model.BeliefSet{Content: report.BeliefSet}

	consistent, msg, err := s.engine.IsConsistent(ctx, beliefSet.Content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: consistency check failed: %v\n", err)
	} else {
		report.Consistent = &consistent
		if !consistent {
			fmt.Fprintf(os.Stderr, "Warning: belief set reported inconsistent: %s\n", msg)
		}
	}

	queries, err := s.queries.Generate(ctx, text, beliefSet)
	if err != nil {
		return nil, err
	}

	for _, query := range queries {
		raw, err := s.engine.ExecuteQuery(ctx, beliefSet.Content, query)
		if err != nil {
			report.Queries = append(report.Queries, model.QueryResult{
				Query:   query,
				Verdict: model.VerdictUnknown,
				Raw:     fmt.Sprintf("execution error: %v", err),
			})
			continue
		}
		report.Queries = append(report.Queries, model.QueryResult{
			Query:   query,
			Verdict: reason.Classify(raw),
			Raw:     raw,
		})
	}

	interpretation, err := s.interp.Interpret(ctx, text, beliefSet, report.Queries)
	if err != nil {
		// The formal results stand on their own; a failed narration is a warning
		fmt.Fprintf(os.Stderr, "Warning: interpretation failed: %v\n", err)
	} else {
		report.Interpretation = interpretation
	}

	return report, nil
}
