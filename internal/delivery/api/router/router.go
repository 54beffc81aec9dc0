// Package router wires the API handlers to their routes.
package router

import (
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	RequestHandler  *handler.RequestHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
	// MetricsHandler is absent when metrics are disabled.
	MetricsHandler http.Handler `name:"metrics" optional:"true"`
}

type router struct {
	businessHandler *handler.BusinessHandler
	requestHandler  *handler.RequestHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
	metricsHandler  http.Handler
	metricsPath     string
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		requestHandler:  params.RequestHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
		metricsHandler:  params.MetricsHandler,
		metricsPath:     params.Config.Metrics.Path,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		e.GET(r.metricsPath, echo.WrapHandler(r.metricsHandler))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	businessesGroup := apiV1.Group("/businesses")
	{
		businessesGroup.GET("/me", r.businessHandler.GetMyBusiness)
		businessesGroup.GET("/me/access-rights", r.businessHandler.GetMyAccessRights)
		businessesGroup.PUT("/me/categories", r.businessHandler.UpdateMyCategories)
		businessesGroup.GET("/:userId/access-rights", r.businessHandler.GetAccessRights,
			r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	apiV1.GET("/business-types", r.businessHandler.ListBusinessTypes)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("/dispatch", r.requestHandler.DispatchRequest)
		requestsGroup.POST("/targets", r.requestHandler.PreviewTargets,
			r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	dispatchesGroup := apiV1.Group("/dispatches")
	dispatchesGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		dispatchesGroup.GET("/:id", r.requestHandler.GetDispatch)
	}
}
