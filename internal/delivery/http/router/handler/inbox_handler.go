package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"courtside/internal/delivery/http/response"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InboxHandlerParams holds dependencies for InboxHandler, injected by Fx.
type InboxHandlerParams struct {
	fx.In

	InboxUC usecase.InboxUsecase
	Logger  *slog.Logger
}

// InboxHandler holds dependencies for in-app inbox handlers
type InboxHandler struct {
	inboxUC usecase.InboxUsecase
	logger  *slog.Logger
}

// NewInboxHandler is the constructor for InboxHandler
func NewInboxHandler(params InboxHandlerParams) *InboxHandler {
	return &InboxHandler{
		inboxUC: params.InboxUC,
		logger:  params.Logger,
	}
}

// ListInbox handles paginated retrieval of the caller's notifications
func (h *InboxHandler) ListInbox(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	records, err := h.inboxUC.ListInbox(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Inbox retrieved successfully")
}

// MarkRead handles marking one notification as read
func (h *InboxHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.inboxUC.MarkRead(c.Request().Context(), userID, deliveryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// CountUnread handles retrieving the caller's unread notification count
func (h *InboxHandler) CountUnread(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	count, err := h.inboxUC.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}
