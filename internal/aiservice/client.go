// Package aiservice is the HTTP client for the Python AI sidecar that
// hosts the ML model and the LLM providers.
package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"kore-engine/internal/config"
	"kore-engine/internal/model"
)

var (
	// ErrNoAction means the service answered but proposed nothing.
	ErrNoAction = errors.New("aiservice: no action in response")
	// ErrUnhealthy means the sidecar health probe failed.
	ErrUnhealthy = errors.New("aiservice: unhealthy")
)

// The strategic query is always the same question; the game state
// carries the actual situation.
const (
	llmPrompt  = "What should I do next for optimal progression?"
	llmContext = "Strategic planning for character progression"
)

// Client talks to the AI service sidecar. LLM queries get their own
// long-timeout http.Client because providers can take minutes; ML
// predictions and health probes share a short one.
type Client struct {
	baseURL string
	llm     *http.Client
	std     *http.Client
}

// NewClient builds a Client from engine config.
func NewClient(cfg config.Engine) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.AIServiceURL, "/"),
		llm:     &http.Client{Transport: transport, Timeout: cfg.LLMTimeout},
		std:     &http.Client{Transport: transport, Timeout: cfg.MLTimeout},
	}
}

// llmRequest is the envelope for /api/v1/llm/query.
type llmRequest struct {
	Prompt    string          `json:"prompt"`
	GameState model.GameState `json:"game_state"`
	Context   string          `json:"context"`
	RequestID string          `json:"request_id"`
}

// mlRequest is the envelope for /api/v1/ml/predict.
type mlRequest struct {
	GameState model.GameState `json:"game_state"`
	RequestID string          `json:"request_id"`
}

// reply mirrors the sidecar's response envelope. Both the LLM and ML
// endpoints answer with an optional action.
type reply struct {
	Response  string        `json:"response"`
	Action    *model.Action `json:"action"`
	LatencyMS int           `json:"latency_ms"`
	Provider  string        `json:"provider"`
	RequestID string        `json:"request_id"`
}

// QueryLLM asks the sidecar for a strategic action. The request ID is
// derived from the state timestamp so engine and provider logs can be
// matched up.
func (c *Client) QueryLLM(ctx context.Context, state model.GameState) (model.Action, error) {
	req := llmRequest{
		Prompt:    llmPrompt,
		GameState: state,
		Context:   llmContext,
		RequestID: fmt.Sprintf("llm_%d", state.TimestampMS),
	}

	var out reply
	if err := c.post(ctx, c.llm, "/api/v1/llm/query", req, &out); err != nil {
		return model.Action{}, err
	}
	if out.Action == nil {
		return model.Action{}, ErrNoAction
	}

	slog.Debug("llm reply",
		"provider", out.Provider,
		"latency_ms", out.LatencyMS,
		"request_id", out.RequestID)
	return *out.Action, nil
}

// QueryML asks the sidecar's prediction model for an action.
func (c *Client) QueryML(ctx context.Context, state model.GameState) (model.Action, error) {
	req := mlRequest{
		GameState: state,
		RequestID: fmt.Sprintf("ml_%d", state.TimestampMS),
	}

	var out reply
	if err := c.post(ctx, c.std, "/api/v1/ml/predict", req, &out); err != nil {
		return model.Action{}, err
	}
	if out.Action == nil {
		return model.Action{}, ErrNoAction
	}
	return *out.Action, nil
}

// Health probes the sidecar. Anything but a 200 counts as down.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}

	resp, err := c.std.Do(req)
	if err != nil {
		return fmt.Errorf("probing ai service: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, hc *http.Client, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
