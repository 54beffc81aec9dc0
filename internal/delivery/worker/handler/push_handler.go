// Package handler contains the dispatcher's Pub/Sub push handler.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/errors"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler receives request notification events pushed by Pub/Sub.
//
// Responses drive redelivery: 2xx acknowledges, 503 asks for a retry, and
// 400 rejects events that can never succeed.
type PushHandler struct {
	verify     TokenVerifier
	logger     *slog.Logger
	deliveryUC usecase.DeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.DeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Tokens are only verified for the
// Google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		deliveryUC: params.DeliveryUC,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// WithVerifier replaces the push token check.
func (h *PushHandler) WithVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Dispatcher] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Dispatcher] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Dispatcher] Failed to decode request notification event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the id of the API call that produced the event so both sides share a trace.
	requestID := deliverycontext.FirstRequestID(
		envelope.Message.Attributes["trace_id"],
		event.TraceID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), reqLogger)

	reqLogger.Info("[Dispatcher] Processing request notification",
		slog.String("dispatch_id", event.DispatchID),
		slog.String("request_type", event.RequestType),
		slog.Int("candidate_count", len(event.Candidates)),
	)

	report, err := h.deliveryUC.DeliverDispatch(ctx, event)
	if err != nil {
		malformed := errors.Is(err, usecase.ErrMalformedEvent)
		reqLogger.Error("[Dispatcher] Failed to deliver dispatch",
			slog.String("dispatch_id", event.DispatchID),
			slog.Bool("retryable", !malformed),
			slog.Any("error", err),
		)

		if malformed {
			return c.NoContent(http.StatusBadRequest)
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, report)
}

// verifyPubSubToken validates the Google-signed OIDC token of a push request.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	// The audience is the push endpoint URL configured on the subscription.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
