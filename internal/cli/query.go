package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/credo/internal/fol"
	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/reason"
	"github.com/spf13/cobra"
)

var (
	queryTimeout     time.Duration
	checkConsistency bool
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <belief-set-file> <query>",
	Short: "Validate and execute a query against a saved belief set",
	Long: `Query loads a belief set previously produced by 'credo build', validates
the query locally (known predicate, known constants, matching arity) and
against the engine, executes it, and prints the verdict.

Example:
  credo query kb.fol "Loves(jean, paris)"
  credo query kb.fol "Loves(jean, paris)" --consistency`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().DurationVar(&queryTimeout, "timeout", 2*time.Minute, "query timeout")
	queryCmd.Flags().BoolVar(&checkConsistency, "consistency", false, "also check belief set consistency")
	queryCmd.Flags().StringVar(&engineURL, "engine-url", "", "reasoning engine base URL")
}

func runQuery(cmd *cobra.Command, args []string) error {
	path, query := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read belief set: %w", err)
	}
	beliefSet := strings.TrimSpace(string(data))
	if beliefSet == "" {
		return fmt.Errorf("belief set file %s is empty", path)
	}

	cfg := model.DefaultConfig()
	if engineURL != "" {
		cfg.Engine.BaseURL = engineURL
	}
	engine := reason.NewHTTPEngine(cfg.Engine.BaseURL, reason.HTTPEngineOptions{
		Timeout: time.Duration(cfg.Engine.Timeout) * time.Second,
	})

	// Local structural check first; cheaper and with a better message than
	// a round-trip to the engine.
	if idea, ok := parseQueryString(query); ok {
		table := fol.ParseBeliefSet(beliefSet)
		if err := table.CheckCandidate(idea); err != nil {
			return fmt.Errorf("query rejected: %w", err)
		}
	}

	valid, msg, err := engine.ValidateQueryWithContext(ctx, beliefSet, query)
	if err != nil {
		return fmt.Errorf("engine validation: %w", err)
	}
	if !valid {
		return fmt.Errorf("query rejected by engine: %s", msg)
	}

	if checkConsistency {
		consistent, cmsg, err := engine.IsConsistent(ctx, beliefSet)
		if err != nil {
			return fmt.Errorf("consistency check: %w", err)
		}
		fmt.Printf("Consistent: %v", consistent)
		if cmsg != "" {
			fmt.Printf(" (%s)", cmsg)
		}
		fmt.Println()
	}

	raw, err := engine.ExecuteQuery(ctx, beliefSet, query)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	fmt.Printf("%s: %s\n", query, reason.Classify(raw))
	if verbose {
		fmt.Fprintf(os.Stderr, "Raw result: %s\n", raw)
	}

	return nil
}

// parseQueryString splits "Name(c1, c2)" into a candidate for local checks.
// Anything fancier than a predicate application is left to the engine.
func parseQueryString(query string) (model.QueryIdea, bool) {
	query = strings.TrimSpace(query)
	open := strings.IndexByte(query, '(')
	if open == -1 {
		return model.QueryIdea{PredicateName: query}, query != ""
	}
	if !strings.HasSuffix(query, ")") {
		return model.QueryIdea{}, false
	}

	name := strings.TrimSpace(query[:open])
	inner := query[open+1 : len(query)-1]

	var constants []string
	for _, c := range strings.Split(inner, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		constants = append(constants, c)
	}

	return model.QueryIdea{PredicateName: name, Constants: constants}, name != ""
}
