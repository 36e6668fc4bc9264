package agenteval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Version is the client version reported in the User-Agent header.
const Version = "2.0.0"

const (
	// DefaultBaseURL points at a locally running evaluation service.
	DefaultBaseURL = "http://localhost:5000/v1"
	// DefaultTimeout bounds a single HTTP request.
	DefaultTimeout = 30 * time.Second
	// DefaultPollInterval is the fixed delay between status polls.
	DefaultPollInterval = 2 * time.Second

	defaultUserAgent = "agenteval-go/" + Version
)

// HTTPDoer abstracts the HTTP client for testing.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries the client settings. The zero value of every field except
// APIKey is usable; defaults are applied by NewWithConfig.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string
	// BaseURL is the service root including the version prefix,
	// e.g. "https://eval.example.com/v1". Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds each HTTP request made with the default HTTP client.
	// Ignored when HTTPClient is set. Defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport. Defaults to an http.Client
	// with Timeout applied.
	HTTPClient HTTPDoer
	// PollInterval is the delay between WaitForCompletion polls.
	// Defaults to DefaultPollInterval.
	PollInterval time.Duration
	// PollObserver, when set, is invoked after every successful poll
	// with the refreshed evaluation.
	PollObserver func(*Evaluation)
	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// Client talks to the agent evaluation service. Use the resource services
// (Agents, TestSuites, Evaluations, Webhooks) for API calls.
type Client struct {
	baseURL      string
	apiKey       string
	userAgent    string
	httpClient   HTTPDoer
	pollInterval time.Duration
	pollObserver func(*Evaluation)

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	Agents      *AgentsService
	TestSuites  *TestSuitesService
	Evaluations *EvaluationsService
	Webhooks    *WebhooksService
}

// New constructs a client with default settings for the given API key.
func New(apiKey string) (*Client, error) {
	return NewWithConfig(Config{APIKey: apiKey})
}

// NewWithConfig constructs a client from cfg, applying defaults for unset
// fields. The API key is required.
func NewWithConfig(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		userAgent:    cfg.UserAgent,
		httpClient:   cfg.HTTPClient,
		pollInterval: cfg.PollInterval,
		pollObserver: cfg.PollObserver,
		now:          time.Now,
		sleep:        sleepContext,
	}
	c.Agents = &AgentsService{client: c}
	c.TestSuites = &TestSuitesService{client: c}
	c.Evaluations = &EvaluationsService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	return c, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// HealthCheck verifies connectivity and returns the service health report.
// It hits the unauthenticated health endpoint.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.getJSON(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, int, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, &ServiceError{Code: CodeRequest, Message: err.Error()}
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, transportError(ctx, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, transportError(ctx, err)
	}
	return raw, resp.StatusCode, nil
}

// getJSON fetches path and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, status, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if !success(status) {
		return decodeServiceError(status, body)
	}
	return unmarshalBody(body, out)
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func unmarshalBody(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &ServiceError{Code: CodeRequest, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// transportError classifies a failure that happened before a response was
// read. Caller context cancellation takes priority so ctx.Err() propagates
// unchanged.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &ServiceError{Code: CodeTimeout, Message: err.Error()}
	}
	return &ServiceError{Code: CodeConnection, Message: err.Error()}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
