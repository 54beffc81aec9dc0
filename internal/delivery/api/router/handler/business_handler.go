package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC     usecase.BusinessUsecase
	AccessRightsUC usecase.AccessRightsUsecase
}

// BusinessHandler serves the business profile, access rights and type lookup endpoints.
type BusinessHandler struct {
	businessUC     usecase.BusinessUsecase
	accessRightsUC usecase.AccessRightsUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC:     params.BusinessUC,
		accessRightsUC: params.AccessRightsUC,
	}
}

// UpdateCategoriesRequest replaces the caller's preferred categories.
type UpdateCategoriesRequest struct {
	Categories []string `json:"categories" validate:"dive,max=64"`
}

// GetMyBusiness returns the caller's business record.
func (h *BusinessHandler) GetMyBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// GetMyAccessRights returns what the caller's business may do.
func (h *BusinessHandler) GetMyAccessRights(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.writeAccessRights(c, userID)
}

// GetAccessRights returns the access rights of any account. Admin only.
func (h *BusinessHandler) GetAccessRights(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	return h.writeAccessRights(c, userID)
}

func (h *BusinessHandler) writeAccessRights(c echo.Context, userID uuid.UUID) error {
	rights, err := h.accessRightsUC.GetAccessRights(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rights)
}

// UpdateMyCategories replaces the caller's preferred category ids.
func (h *BusinessHandler) UpdateMyCategories(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid categories input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid categories input", validator.Details(err))
	}

	categories, err := h.businessUC.UpdateCategories(c.Request().Context(), userID, req.Categories)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"categories": categories})
}

// ListBusinessTypes returns the business type lookup table.
func (h *BusinessHandler) ListBusinessTypes(c echo.Context) error {
	types, err := h.businessUC.ListBusinessTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, types)
}
