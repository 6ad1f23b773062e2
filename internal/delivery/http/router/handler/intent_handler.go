package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "courtside/internal/delivery/context"
	"courtside/internal/delivery/http/response"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IntentHandlerParams holds dependencies for IntentHandler, injected by Fx.
type IntentHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// IntentHandler holds dependencies for intent submission and inspection
type IntentHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewIntentHandler is the constructor for IntentHandler
func NewIntentHandler(params IntentHandlerParams) *IntentHandler {
	return &IntentHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// SubmitIntentRequest represents the request body for submitting an intent
type SubmitIntentRequest struct {
	Kind               string            `json:"kind" validate:"required"`
	Title              string            `json:"title" validate:"required"`
	Body               string            `json:"body" validate:"required"`
	TargetingRule      string            `json:"targeting_rule" validate:"required,oneof=all_users user_id user_id_list role"`
	TargetUserIDs      []string          `json:"target_user_ids"`
	TargetRole         string            `json:"target_role"`
	CorrelatedEntityID string            `json:"correlated_entity_id"`
	Payload            map[string]string `json:"payload"`
	Priority           string            `json:"priority" validate:"omitempty,oneof=normal high"`
}

// SubmitIntent handles intent submission. The intent is accepted and queued;
// delivery happens asynchronously in the dispatch worker.
func (h *IntentHandler) SubmitIntent(c echo.Context) error {
	var req SubmitIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.IntentInput{
		Kind:               req.Kind,
		Title:              req.Title,
		Body:               req.Body,
		TargetingRule:      req.TargetingRule,
		TargetUserIDs:      req.TargetUserIDs,
		TargetRole:         req.TargetRole,
		CorrelatedEntityID: req.CorrelatedEntityID,
		Payload:            req.Payload,
		Priority:           req.Priority,
	}

	intent, err := h.dispatchUC.SubmitIntent(c.Request().Context(), input, deliverycontext.GetRequestID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, intent, "Intent accepted")
}

// GetIntent handles retrieving one intent's dispatch record
func (h *IntentHandler) GetIntent(c echo.Context) error {
	intentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid intent ID")
	}

	record, err := h.dispatchUC.GetIntentRecord(c.Request().Context(), intentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Intent retrieved successfully")
}
