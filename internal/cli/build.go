package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/credo/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	buildTimeout time.Duration
	noCache      bool
	llmProvider  string
	llmModel     string
	engineURL    string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <text|file|url>",
	Short: "Convert text into a validated belief set",
	Long: `Build converts natural-language input into a first-order-logic belief set:
- Extract sorts and predicates via the configured LLM
- Correct misfiled predicate argument types
- Generate formulas constrained to the corrected definitions
- Filter formulas referencing undeclared constants
- Normalize identifiers, validate referential integrity
- Validate the assembled belief set against the reasoning engine

The input may be inline text, a path to a text file, or an http(s) URL
(fetched politely, reduced to visible text).

Example:
  credo build "Jean loves Paris" --llm-provider openai
  credo build notes.txt --json report.json
  credo build https://en.wikipedia.org/wiki/Laksa --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 5*time.Minute, "overall build timeout")
	buildCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable completion cache")
	buildCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	buildCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	buildCmd.Flags().StringVar(&engineURL, "engine-url", "", "reasoning engine base URL")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	session, err := pipeline.NewSession(cfg)
	if err != nil {
		return err
	}

	subject, source, text, err := sourceInput(ctx, cfg, args[0])
	if err != nil {
		return err
	}

	report, err := session.Build(ctx, subject, source, text)
	if err != nil {
		return err
	}

	fmt.Println(report.BeliefSet)

	if report.FormulasDropped > 0 {
		fmt.Fprintf(os.Stderr, "\n%d formula(s) dropped by the admission filter\n", report.FormulasDropped)
	}

	if outJSON != "" {
		if err := pipeline.WriteJSON(report, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	return nil
}
