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
	askJSON    string
	askTimeout time.Duration
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <text|file|url>",
	Short: "Full analysis: build, query, execute, interpret",
	Long: `Ask runs the complete analysis cycle on the input:
- Build a validated belief set (same pipeline as 'credo build')
- Check the belief set's consistency
- Generate query candidates and keep only those that survive validation
- Execute accepted queries on the reasoning engine
- Interpret the verdicts in natural language

Example:
  credo ask "Jean loves Paris. Everyone who loves a place visits it."
  credo ask article.txt --json analysis.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askJSON, "json", "", "output JSON report path (optional)")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 10*time.Minute, "overall analysis timeout")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable completion cache")
	askCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	askCmd.Flags().StringVar(&engineURL, "engine-url", "", "reasoning engine base URL")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
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

	report, err := session.Analyze(ctx, subject, source, text)
	if err != nil {
		return err
	}

	fmt.Println("Belief set:")
	fmt.Println(report.BeliefSet)
	fmt.Println()

	if report.Consistent != nil {
		fmt.Printf("Consistent: %v\n\n", *report.Consistent)
	}

	if len(report.Queries) == 0 {
		fmt.Println("No queries survived validation.")
	} else {
		fmt.Println("Queries:")
		for _, q := range report.Queries {
			fmt.Printf("  %-40s %s\n", q.Query, q.Verdict)
		}
		fmt.Println()
	}

	if report.Interpretation != "" {
		fmt.Println("Interpretation:")
		fmt.Println(report.Interpretation)
	}

	if askJSON != "" {
		if err := pipeline.WriteJSON(report, askJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", askJSON)
		}
	}

	return nil
}
