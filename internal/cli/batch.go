package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ppiankov/credo/internal/model"
	"github.com/ppiankov/credo/internal/pipeline"
	"github.com/ppiankov/credo/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	outputDir   string
	itemTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple inputs from a file in parallel",
	Long: `Batch processes multiple inputs concurrently:
- Read inputs from a file (one per line: text file path or URL)
- Analyze inputs in parallel with a configurable worker count
- Write one JSON report per input to the output directory

Each analysis owns its records and lookup tables; runs share only the
completion cache and the engine connection.

Example:
  credo batch inputs.txt
  credo batch inputs.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./credo-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&itemTimeout, "item-timeout", 5*time.Minute, "timeout for individual analyses")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable completion cache")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	batchCmd.Flags().StringVar(&engineURL, "engine-url", "", "reasoning engine base URL")
}

// analyzeJob runs one input through the session
type analyzeJob struct {
	session *pipeline.Session
	cfg     *model.Config
	spec    string
	outPath string
	timeout time.Duration
}

// analyzeResult implements worker.Result
type analyzeResult struct {
	spec string
	err  error
}

func (r *analyzeResult) GetError() error {
	return r.err
}

func (j *analyzeJob) Execute(ctx context.Context) worker.Result {
	itemCtx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	subject, source, text, err := sourceInput(itemCtx, j.cfg, j.spec)
	if err != nil {
		return &analyzeResult{spec: j.spec, err: err}
	}

	report, err := j.session.Analyze(itemCtx, subject, source, text)
	if err != nil {
		return &analyzeResult{spec: j.spec, err: err}
	}

	if err := pipeline.WriteJSON(report, j.outPath); err != nil {
		return &analyzeResult{spec: j.spec, err: err}
	}

	return &analyzeResult{spec: j.spec}
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	session, err := pipeline.NewSession(cfg)
	if err != nil {
		return err
	}

	specs, err := readInputLines(file)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("no inputs found in %s", file)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d input(s) with %d worker(s)\n", len(specs), concurrency)

	pool := worker.NewPool(concurrency)
	pool.Start()

	for i, spec := range specs {
		pool.Submit(&analyzeJob{
			session: session,
			cfg:     cfg,
			spec:    spec,
			outPath: filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1)),
			timeout: itemTimeout,
		})
	}

	failures := 0
	for _, res := range pool.Wait() {
		ar := res.(*analyzeResult)
		if err := ar.GetError(); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", ar.spec, err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "OK   %s\n", ar.spec)
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d/%d succeeded, reports in %s\n", len(specs)-failures, len(specs), outputDir)

	if failures == len(specs) {
		return fmt.Errorf("all %d input(s) failed", failures)
	}
	return nil
}

// readInputLines reads one input spec per line, skipping blanks and comments
func readInputLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var specs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	return specs, scanner.Err()
}
