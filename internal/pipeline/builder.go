package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/credo/internal/extract"
	"github.com/ppiankov/credo/internal/fol"
	"github.com/ppiankov/credo/internal/llm"
	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/normalize"
	"github.com/ppiankov/credo/internal/reason"
)

// State tracks progress of one belief-set construction.
type State string

const (
	StateDefinitionsPending State = "definitions_pending"
	StateDefinitionsReady   State = "definitions_ready"
	StateArgumentsCorrected State = "arguments_corrected"
	StateFormulasPending    State = "formulas_pending"
	StateFormulasReady      State = "formulas_ready"
	StateFiltered           State = "filtered"
	StateValidated          State = "normalized_and_validated"
	StateAssembled          State = "assembled"
	StateEngineValidated    State = "engine_validated"
	StateDone               State = "done"
	StateFailed             State = "failed"
)

const defaultBuildAttempts = 3

// buildSleepFunc is the sleep between validation attempts (injectable for tests)
var buildSleepFunc = time.Sleep

// Builder converts natural-language text into an engine-validated belief set.
//
// The construction runs definitions -> argument correction -> formulas ->
// admission filter, then a bounded retry loop around normalization,
// validation, assembly and the engine's grammar check. The retries currently
// re-run on an unchanged record; the loop shape exists so a corrective
// re-prompt can slot in without reshaping the pipeline.
type Builder struct {
	llm      *llm.Client
	engine   reason.Engine
	attempts int
	verbose  bool
	state    State
}

// NewBuilder creates a builder over the given completion client and engine
func NewBuilder(client *llm.Client, engine reason.Engine, verbose bool) *Builder {
	return &Builder{
		llm:      client,
		engine:   engine,
		attempts: defaultBuildAttempts,
		verbose:  verbose,
		state:    StateDefinitionsPending,
	}
}

// State returns the current construction state.
func (b *Builder) State() State {
	return b.state
}

// BuildResult is a successful construction: the validated record, the
// assembled text the engine accepted, and filter/attempt counters.
type BuildResult struct {
	BeliefSet model.BeliefSet
	Record    *model.Record
	Kept      int
	Dropped   int
	Attempts  int
}

// Build runs the whole construction for one text.
func (b *Builder) Build(ctx context.Context, text string) (*BuildResult, error) {
	// Definitions: sorts and predicates
	b.state = StateDefinitionsPending
	b.logf("Generating sorts and predicates...")
	defsResp, err := b.llm.Complete(ctx, llm.CompletionRequest{Prompt: llm.DefinitionsPrompt(text)})
	if err != nil {
		return nil, b.fail(fmt.Errorf("definitions completion: %w", err))
	}

	record, err := extract.Definitions(defsResp.Text)
	if err != nil {
		return nil, b.fail(fmt.Errorf("definitions extraction: %w", err))
	}
	b.state = StateDefinitionsReady

	// Reclassify argument slots declared as constants instead of sorts
	if n := fol.CorrectPredicateArgs(record); n > 0 {
		b.logf("Corrected %d predicate argument slot(s)", n)
	}
	b.state = StateArgumentsCorrected

	// Formulas, constrained to the corrected definitions
	b.state = StateFormulasPending
	b.logf("Generating formulas...")
	defsJSON, err := json.MarshalIndent(struct {
		Sorts      map[string][]string `json:"sorts"`
		Predicates []model.Predicate   `json:"predicates"`
	}{record.Sorts, record.Predicates}, "", "  ")
	if err != nil {
		return nil, b.fail(fmt.Errorf("marshal definitions: %w", err))
	}

	formulasResp, err := b.llm.Complete(ctx, llm.CompletionRequest{Prompt: llm.FormulasPrompt(text, string(defsJSON))})
	if err != nil {
		return nil, b.fail(fmt.Errorf("formulas completion: %w", err))
	}

	formulas, err := extract.Formulas(formulasResp.Text)
	if err != nil {
		return nil, b.fail(fmt.Errorf("formulas extraction: %w", err))
	}
	record.Formulas = formulas
	b.state = StateFormulasReady

	// Second line of defense: drop formulas referencing undeclared constants
	kept, dropped := fol.FilterFormulas(record)
	b.logf("Formula filter: %d kept, %d dropped", kept, dropped)
	b.state = StateFiltered

	// Normalize, validate, assemble, engine-check — bounded retries
	var lastErr error
	for attempt := 1; attempt <= b.attempts; attempt++ {
		if attempt > 1 {
			buildSleepFunc(time.Duration(attempt-1) * time.Second)
		}
		b.logf("Validation attempt %d/%d...", attempt, b.attempts)

		candidate := record.Clone()
		normalize.Record(candidate)

		if err := fol.ValidateRecord(candidate); err != nil {
			lastErr = err
			continue
		}
		b.state = StateValidated

		content := fol.Assemble(candidate)
		if content == "" {
			lastErr = ErrEmptyAssembly
			continue
		}
		b.state = StateAssembled

		valid, msg, err := b.engine.ValidateBeliefSet(ctx, content)
		if err != nil {
			lastErr = fmt.Errorf("engine validation: %w", err)
			continue
		}
		if !valid {
			lastErr = &EngineRejectedError{Message: msg, BeliefSet: content}
			continue
		}
		b.state = StateEngineValidated

		b.state = StateDone
		return &BuildResult{
			BeliefSet: model.BeliefSet{Content: content},
			Record:    candidate,
			Kept:      kept,
			Dropped:   dropped,
			Attempts:  attempt,
		}, nil
	}

	return nil, b.fail(fmt.Errorf("belief set construction failed after %d attempts: %w", b.attempts, lastErr))
}

func (b *Builder) fail(err error) error {
	b.state = StateFailed
	return err
}

func (b *Builder) logf(format string, args ...any) {
	if b.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
