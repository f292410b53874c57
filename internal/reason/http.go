package reason

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ppiankov/credo/internal/util"
)

// HTTPEngine talks to a reasoner sidecar over HTTP. Every endpoint takes a
// small JSON body and answers either {"valid": bool, "message": string} or
// {"result": string}; non-2xx responses surface as errors, not verdicts.
type HTTPEngine struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPEngineOptions configures the HTTP engine client
type HTTPEngineOptions struct {
	Timeout    time.Duration
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// NewHTTPEngine creates an engine client for the given base URL
func NewHTTPEngine(baseURL string, opts HTTPEngineOptions) *HTTPEngine {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPEngine{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(opts.HTTPProxy, opts.HTTPSProxy, opts.NoProxy),
			},
		},
	}
}

type checkRequest struct {
	BeliefSet string `json:"belief_set,omitempty"`
	Query     string `json:"query,omitempty"`
	Formula   string `json:"formula,omitempty"`
}

type checkResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// ValidateBeliefSet implements Engine
func (e *HTTPEngine) ValidateBeliefSet(ctx context.Context, beliefSet string) (bool, string, error) {
	resp, err := e.post(ctx, "/fol/validate-belief-set", checkRequest{BeliefSet: beliefSet})
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.Message, nil
}

// ValidateQueryWithContext implements Engine
func (e *HTTPEngine) ValidateQueryWithContext(ctx context.Context, beliefSet, query string) (bool, string, error) {
	resp, err := e.post(ctx, "/fol/validate-query", checkRequest{BeliefSet: beliefSet, Query: query})
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.Message, nil
}

// ExecuteQuery implements Engine
func (e *HTTPEngine) ExecuteQuery(ctx context.Context, beliefSet, query string) (string, error) {
	resp, err := e.post(ctx, "/fol/query", checkRequest{BeliefSet: beliefSet, Query: query})
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

// IsConsistent implements Engine
func (e *HTTPEngine) IsConsistent(ctx context.Context, beliefSet string) (bool, string, error) {
	resp, err := e.post(ctx, "/fol/consistency", checkRequest{BeliefSet: beliefSet})
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.Message, nil
}

// ValidateFormula implements Engine
func (e *HTTPEngine) ValidateFormula(ctx context.Context, formula string) (bool, string, error) {
	resp, err := e.post(ctx, "/fol/validate-formula", checkRequest{Formula: formula})
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.Message, nil
}

func (e *HTTPEngine) post(ctx context.Context, path string, reqBody checkRequest) (*checkResponse, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("engine request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read engine response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("engine %s: HTTP %d: %s", path, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed checkResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode engine response: %w", err)
	}

	return &parsed, nil
}
