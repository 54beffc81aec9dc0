package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	TargetingUC usecase.TargetingUsecase
	DispatchUC  usecase.DispatchUsecase
	Logger      *slog.Logger
}

// RequestHandler serves targeting previews and request dispatch.
type RequestHandler struct {
	targetingUC usecase.TargetingUsecase
	dispatchUC  usecase.DispatchUsecase
	logger      *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		targetingUC: params.TargetingUC,
		dispatchUC:  params.DispatchUC,
		logger:      params.Logger,
	}
}

func bindDescriptor(c echo.Context) (*entity.RequestDescriptor, error) {
	var req entity.RequestDescriptor
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid request descriptor")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid request descriptor", validator.Details(err))
	}

	return &req, nil
}

// DispatchRequest targets the businesses for a request and queues their notifications.
func (h *RequestHandler) DispatchRequest(c echo.Context) error {
	req, err := bindDescriptor(c)
	if req == nil {
		return err
	}

	outcome, err := h.dispatchUC.DispatchRequest(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, outcome)
}

// PreviewTargets returns the ranked candidates without notifying anyone. Admin only.
func (h *RequestHandler) PreviewTargets(c echo.Context) error {
	req, err := bindDescriptor(c)
	if req == nil {
		return err
	}

	result, err := h.targetingUC.GetBusinessesToNotify(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetDispatch returns a dispatch record and its delivery totals. Admin only.
func (h *RequestHandler) GetDispatch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid dispatch ID")
	}

	dispatch, err := h.dispatchUC.GetDispatch(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dispatch)
}
