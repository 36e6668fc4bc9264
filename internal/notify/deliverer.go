package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agenteval/pkg/agenteval"
)

// Payload is the JSON body posted to webhook targets.
type Payload struct {
	Event      string               `json:"event"`
	Timestamp  time.Time            `json:"timestamp"`
	Evaluation agenteval.Evaluation `json:"evaluation"`
}

// Deliverer posts event payloads to webhook targets, retrying transient
// failures with exponential backoff.
type Deliverer struct {
	httpClient *http.Client
	retry      RetryConfig
}

// NewDeliverer builds a deliverer with a per-request timeout.
func NewDeliverer(retry RetryConfig) *Deliverer {
	return &Deliverer{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      retry,
	}
}

// Send delivers payload to url. Transport failures and retryable statuses
// (408, 429, 5xx) are retried up to MaxRetries times; other statuses fail
// immediately.
func (d *Deliverer) Send(ctx context.Context, url string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}
	var lastErr error
	for attempt := 0; attempt <= d.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff(attempt, d.retry)):
			case <-ctx.Done():
				return fmt.Errorf("webhook delivery canceled after %d attempts: %w", attempt, ctx.Err())
			}
		}
		status, err := d.post(ctx, url, body)
		if err == nil && status >= 200 && status < 300 {
			return nil
		}
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
		} else {
			lastErr = fmt.Errorf("attempt %d: http %d", attempt+1, status)
		}
		if status > 0 && !retryableStatus(status) {
			return lastErr
		}
	}
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", d.retry.MaxRetries+1, lastErr)
}

func (d *Deliverer) post(ctx context.Context, url string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
