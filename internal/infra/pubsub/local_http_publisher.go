package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 30 * time.Second
	localSubscription   = "projects/local/subscriptions/request-notifications"
)

// localHTTPPublisher POSTs push envelopes straight to a dispatcher, emulating a Pub/Sub push subscription.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishRequestNotification(ctx context.Context, event *service.RequestNotificationEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	envelope.Message.MessageID = event.DispatchID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = messageAttributes(event)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.TraceID != "" {
		req.Header.Set("X-Request-Id", event.TraceID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("dispatcher returned non-success status: %d", resp.StatusCode)
	}

	p.logger.InfoContext(ctx, "Request notification pushed to local dispatcher",
		slog.String("endpoint", p.endpoint),
		slog.String("dispatch_id", event.DispatchID),
		slog.Int("candidate_count", len(event.Candidates)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
