package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/delivery/http/response"
	"courtside/internal/domain/constants"
	"courtside/internal/domain/entity"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for registration-related handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// RegisterAddressRequest represents the request body for registering a delivery address
type RegisterAddressRequest struct {
	Channel  string `json:"channel" validate:"required,oneof=push webpush"`
	Address  string `json:"address" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

// UnregisterAddressRequest represents the request body for removing a delivery address
type UnregisterAddressRequest struct {
	Channel string `json:"channel" validate:"required,oneof=push webpush"`
	Address string `json:"address" validate:"required"`
}

// SetPreferenceRequest represents the request body for setting a notification preference
type SetPreferenceRequest struct {
	Kind    string `json:"kind" validate:"required"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

// RegisterAddress handles delivery address registration
func (h *RegistrationHandler) RegisterAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	role := primaryRole(c)

	if err := h.registrationUC.RegisterAddress(c.Request().Context(), userID, role, entity.Channel(req.Channel), req.Address, req.Platform); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Address registered successfully")
}

// UnregisterAddress handles delivery address removal
func (h *RegistrationHandler) UnregisterAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UnregisterAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.registrationUC.UnregisterAddress(c.Request().Context(), userID, entity.Channel(req.Channel), req.Address); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Address removed successfully")
}

// GetRegistration handles retrieving the caller's registration
func (h *RegistrationHandler) GetRegistration(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	registration, err := h.registrationUC.GetRegistration(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registration, "Registration retrieved successfully")
}

// SetPreference handles per-kind notification opt-in/opt-out
func (h *RegistrationHandler) SetPreference(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SetPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.registrationUC.SetPreference(c.Request().Context(), userID, entity.IntentKind(req.Kind), *req.Enabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Preference updated successfully")
}

// DeleteAccount handles removal of the caller's registration and all addresses
func (h *RegistrationHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.registrationUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Registration deleted successfully")
}

// getUserID extracts the user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// primaryRole returns the first role claim, defaulting to player.
func primaryRole(c echo.Context) string {
	roles, ok := c.Get("roles").([]string)
	if !ok || len(roles) == 0 {
		return constants.RolePlayer
	}

	return roles[0]
}
