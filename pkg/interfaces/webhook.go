package interfaces

import "context"

// WebhookEvent carries the payload dispatched to third-party systems when an
// approval occurs (e.g. a membership application is accepted). Delivery,
// signing, and retries belong to the host application.
type WebhookEvent struct {
	Type       string
	ResourceID string
	Payload    map[string]any
}

// WebhookDispatcher forwards approval events to external integrations.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, event WebhookEvent) error
}

// NoOpWebhookDispatcher returns a dispatcher that drops every event. Services
// fall back to it when the host does not wire an integration.
func NoOpWebhookDispatcher() WebhookDispatcher {
	return noopDispatcher{}
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, WebhookEvent) error { return nil }
