package api

// API CLIENT

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

type ReportRequest struct {
	Format   string
	Table    string
	Lang     string
	Percent  *float64
	Scenario *engine.ScenarioInputs
}

// StatusError is returned for any non-2xx answer. Fields is set for 422s.
type StatusError struct {
	StatusCode int
	Message    string
	Fields     []engine.FieldError
}

func (e *StatusError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("unexpected status %d: %s: %s", e.StatusCode, e.Message, strings.Join(msgs, "; "))
}

type requestBody struct {
	Inputs   engine.Inputs          `json:"inputs"`
	Percent  *float64               `json:"percent,omitempty"`
	Scenario *engine.ScenarioInputs `json:"scenario,omitempty"`
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Evaluate runs the full pipeline on the server.
func (c *Client) Evaluate(ctx context.Context, in engine.Inputs) (*engine.Evaluation, error) {
	resp, err := c.post(ctx, "/api/evaluate", requestBody{Inputs: in})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var e engine.Evaluation
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &e, nil
}

// Report downloads a CSV table or an XLSX workbook.
func (c *Client) Report(ctx context.Context, in engine.Inputs, r ReportRequest) ([]byte, error) {
	q := url.Values{}
	if r.Format != "" {
		q.Set("format", r.Format)
	}
	if r.Table != "" {
		q.Set("table", r.Table)
	}
	if r.Lang != "" {
		q.Set("lang", r.Lang)
	}

	path := "/api/report"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.post(ctx, path, requestBody{Inputs: in, Percent: r.Percent, Scenario: r.Scenario})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return data, nil
}

// post sends body as JSON. Non-2xx answers are turned into a *StatusError and
// the body is closed; otherwise the caller closes it.
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()

		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var apiErr struct {
			Error  string              `json:"error"`
			Fields []engine.FieldError `json:"fields"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			statusErr.Message = apiErr.Error
			statusErr.Fields = apiErr.Fields
		}

		c.logger.Warn("API request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", statusErr.Message))
		return nil, statusErr
	}

	return resp, nil
}
