// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courtside/internal/delivery/http/middleware"
	"courtside/internal/delivery/http/router/handler"
	"courtside/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	InboxHandler        *handler.InboxHandler
	IntentHandler       *handler.IntentHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	inboxHandler        *handler.InboxHandler
	intentHandler       *handler.IntentHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		inboxHandler:        params.InboxHandler,
		intentHandler:       params.IntentHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration routes: addresses, preferences, account
	registrationGroup := e.Group("/registrations")
	registrationGroup.Use(r.authMiddleware.Authenticate)
	{
		registrationGroup.GET("/me", r.registrationHandler.GetRegistration)
		registrationGroup.DELETE("/me", r.registrationHandler.DeleteAccount)
		registrationGroup.POST("/addresses", r.registrationHandler.RegisterAddress)
		registrationGroup.DELETE("/addresses", r.registrationHandler.UnregisterAddress)
		registrationGroup.PUT("/preferences", r.registrationHandler.SetPreference)
	}

	// In-app inbox routes
	inboxGroup := e.Group("/inbox")
	inboxGroup.Use(r.authMiddleware.Authenticate)
	{
		inboxGroup.GET("", r.inboxHandler.ListInbox)
		inboxGroup.GET("/unread-count", r.inboxHandler.CountUnread)
		inboxGroup.POST("/:id/read", r.inboxHandler.MarkRead)
	}

	// Intent routes require the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/intents", r.intentHandler.SubmitIntent)
		adminGroup.GET("/intents/:id", r.intentHandler.GetIntent)
	}
}
