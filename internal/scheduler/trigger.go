package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"codeberg.org/daybook/server/internal/config"
)

// Firer triggers one job by name.
type Firer interface {
	Fire(ctx context.Context, job string) (*JobResponse, error)
}

// JobResponse mirrors the job endpoint envelope.
type JobResponse struct {
	OK        bool   `json:"ok"`
	Processed int    `json:"processed"`
	Error     string `json:"error,omitempty"`
}

// HTTPTrigger calls GET <base>/api/cron/<job> with the cron bearer secret.
type HTTPTrigger struct {
	baseURL string
	secret  string
	client  *http.Client
}

func NewHTTPTrigger(cfg *config.SchedulerConfig) *HTTPTrigger {
	return &HTTPTrigger{
		baseURL: cfg.BaseURL,
		secret:  cfg.CronSecret,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (t *HTTPTrigger) Fire(ctx context.Context, job string) (*JobResponse, error) {
	endpoint := t.baseURL + "/api/cron/" + url.PathEscape(job)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+t.secret)
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", job, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", job, err)
	}

	var out JobResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("job %s: status %d: undecodable body: %w", job, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !out.OK {
		return &out, fmt.Errorf("job %s: status %d: %s", job, resp.StatusCode, out.Error)
	}

	return &out, nil
}
