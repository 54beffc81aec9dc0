package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to HTTP endpoints.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent extracts the RequestNotificationEvent carried by a push envelope.
func (e *PushEnvelope) DecodeEvent() (*service.RequestNotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.RequestNotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal request notification event")
	}

	if event.DispatchID == "" {
		return nil, errors.New("event has no dispatch_id")
	}

	return &event, nil
}

// messageAttributes are set on every published message for filtering and tracing.
func messageAttributes(event *service.RequestNotificationEvent) map[string]string {
	attributes := map[string]string{
		"dispatch_id":     event.DispatchID,
		"request_type":    event.RequestType,
		"country_code":    event.CountryCode,
		"candidate_count": strconv.Itoa(len(event.Candidates)),
	}
	if event.TraceID != "" {
		attributes["trace_id"] = event.TraceID
	}

	return attributes
}
