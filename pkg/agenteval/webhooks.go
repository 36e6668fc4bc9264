package agenteval

import (
	"context"
	"encoding/json"
	"fmt"
)

// WebhooksService registers event notification targets.
type WebhooksService struct {
	client *Client
}

// CreateWebhookParams are the inputs for WebhooksService.Create.
// URL is required. Events defaults to [EventEvaluationCompleted].
type CreateWebhookParams struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

// Create registers a webhook. The service delivers the subscribed events
// to the given URL as JSON POST requests.
func (s *WebhooksService) Create(ctx context.Context, params CreateWebhookParams) (*Webhook, error) {
	if params.URL == "" {
		return nil, fmt.Errorf("webhook url is required")
	}
	if len(params.Events) == 0 {
		params.Events = []string{EventEvaluationCompleted}
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	body, status, err := s.client.post(ctx, "/webhooks", payload)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, decodeServiceError(status, body)
	}
	var hook Webhook
	if err := unmarshalBody(body, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}
