package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/credo/internal/llm"
	"github.com/ppiankov/credo/internal/model"
)

// Interpreter turns a batch of query results into a natural-language reading.
type Interpreter struct {
	llm *llm.Client
}

// NewInterpreter creates an interpreter
func NewInterpreter(client *llm.Client) *Interpreter {
	return &Interpreter{llm: client}
}

// Interpret explains the results of the executed queries in plain language.
func (i *Interpreter) Interpret(ctx context.Context, text string, beliefSet model.BeliefSet, results []model.QueryResult) (string, error) {
	if len(results) == 0 {
		return "", nil
	}

	var queries, raws []string
	for _, r := range results {
		queries = append(queries, r.Query)
		if r.Raw != "" {
			raws = append(raws, r.Raw)
		} else {
			raws = append(raws, string(r.Verdict))
		}
	}

	resp, err := i.llm.Complete(ctx, llm.CompletionRequest{
		Prompt: llm.InterpretPrompt(text, beliefSet.Content,
			strings.Join(queries, "\n"), strings.Join(raws, "\n")),
	})
	if err != nil {
		return "", fmt.Errorf("interpretation completion: %w", err)
	}

	return resp.Text, nil
}
