package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/credo/internal/extract"
	"github.com/ppiankov/credo/internal/fol"
	"github.com/ppiankov/credo/internal/llm"
	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/reason"
)

// QueryGenerator derives validated queries from a belief set.
//
// The LLM only proposes ideas (predicate + constants); every idea is checked
// against a lookup table parsed from the belief-set text, assembled locally,
// and finally submitted to the engine's contextual check. A rejected
// candidate is logged and skipped — one hallucination never aborts the batch,
// and the accepted set may legitimately be empty.
type QueryGenerator struct {
	llm     *llm.Client
	engine  reason.Engine
	verbose bool
}

// NewQueryGenerator creates a query generator
func NewQueryGenerator(client *llm.Client, engine reason.Engine, verbose bool) *QueryGenerator {
	return &QueryGenerator{llm: client, engine: engine, verbose: verbose}
}

// Generate returns the queries that survive every check.
func (g *QueryGenerator) Generate(ctx context.Context, text string, beliefSet model.BeliefSet) ([]string, error) {
	table := fol.ParseBeliefSet(beliefSet.Content)

	resp, err := g.llm.Complete(ctx, llm.CompletionRequest{
		Prompt: llm.QueryIdeasPrompt(text, beliefSet.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("query ideas completion: %w", err)
	}

	ideas, err := extract.QueryIdeas(resp.Text)
	if err != nil {
		// Garbage instead of ideas is a soft failure: log and return no queries
		fmt.Fprintf(os.Stderr, "Warning: could not decode query ideas: %v\n", err)
		return []string{}, nil
	}

	g.logf("%d query idea(s) received", len(ideas))

	var queries []string
	for _, idea := range ideas {
		if err := table.CheckCandidate(idea); err != nil {
			g.logf("Query idea rejected: %v", err)
			continue
		}

		query := fol.FormatQuery(idea)

		valid, msg, err := g.engine.ValidateQueryWithContext(ctx, beliefSet.Content, query)
		if err != nil {
			g.logf("Query idea rejected: engine check for %q failed: %v", query, err)
			continue
		}
		if !valid {
			g.logf("Query idea rejected: engine refused %q: %s", query, msg)
			continue
		}

		g.logf("Query validated: %s", query)
		queries = append(queries, query)
	}

	g.logf("%d/%d query idea(s) accepted", len(queries), len(ideas))
	return queries, nil
}

func (g *QueryGenerator) logf(format string, args ...any) {
	if g.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
