package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"time"
)

// ErrAgentUnavailable marks a connection-refused failure, i.e. the agent
// process is not running at all. Callers check it with errors.Is to give
// users a more specific message than a generic transport error.
var ErrAgentUnavailable = errors.New("generation agent unreachable")

// Result is one content draft returned by the generation agent. The three
// document fields are kept raw because the agent may return an object, an
// array, a pre-serialized string, or nothing.
type Result struct {
	Topic          string          `json:"topic"`
	PostType       string          `json:"postType"`
	MainMessage    string          `json:"mainMessage"`
	Objective      string          `json:"objective"`
	SourceInsights json.RawMessage `json:"sourceInsights"`
	Structure      json.RawMessage `json:"structure"`
	VisualPrompts  json.RawMessage `json:"visualPrompts"`
}

type runFlowRequest struct {
	Topics  []string `json:"topics"`
	Context string   `json:"context"`
}

type runFlowResponse struct {
	Results json.RawMessage `json:"results"`
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// DefaultTimeout is intentionally long: the agent runs LLM pipelines and a
// batch of topics routinely takes over a minute.
const DefaultTimeout = 120 * time.Second

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
}

// RunFlow posts the topic batch to the agent and returns its results in
// order. Absent or malformed `results` payloads are treated as an empty
// batch, not an error.
func (c *Client) RunFlow(ctx context.Context, topics []string, contextText string) ([]Result, error) {
	reqBody := runFlowRequest{
		Topics:  topics,
		Context: contextText,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run-flow", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("%w: %v", ErrAgentUnavailable, err)
		}
		return nil, fmt.Errorf("failed to call generation agent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var flowResp runFlowResponse
	if err := json.Unmarshal(body, &flowResp); err != nil {
		return nil, fmt.Errorf("failed to parse agent response: %w", err)
	}

	return decodeResults(flowResp.Results), nil
}

func decodeResults(raw json.RawMessage) []Result {
	if len(raw) == 0 {
		return nil
	}

	var results []Result
	if err := json.Unmarshal(raw, &results); err != nil {
		// Non-array results are treated as an empty batch.
		return nil
	}
	return results
}
