package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastSender is the slice of *messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// Params holds the dependencies of NewNotificationService.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService builds the FCM sender, or a logging sender when Firebase is not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase not configured, push notifications are only logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) ([]service.PushResult, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	if len(tokens) > constants.FirebaseBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.FirebaseBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	results := make([]service.PushResult, len(tokens))
	for idx, token := range tokens {
		results[idx] = service.PushResult{Token: token}
		if idx >= len(response.Responses) {
			results[idx].Error = "missing response"

			continue
		}

		sendResponse := response.Responses[idx]
		if sendResponse.Success {
			results[idx].Delivered = true

			continue
		}

		if sendResponse.Error != nil {
			results[idx].Error = sendResponse.Error.Error()
			results[idx].Invalid = messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error)
		}
	}

	return results, nil
}

// logOnlyService reports every token as delivered without contacting FCM.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) ([]service.PushResult, error) {
	s.logger.InfoContext(ctx, "Push notification skipped",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	results := make([]service.PushResult, len(tokens))
	for idx, token := range tokens {
		results[idx] = service.PushResult{Token: token, Delivered: true}
	}

	return results, nil
}
