package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweepHandler exposes the stale-address sweep as a manual trigger. The
// periodic ticker runs the same use case.
type SweepHandler struct {
	logger   *slog.Logger
	reaperUC usecase.ReaperUsecase
}

// SweepHandlerParams holds dependencies for the SweepHandler
type SweepHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	ReaperUC usecase.ReaperUsecase
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		logger:   params.Logger,
		reaperUC: params.ReaperUC,
	}
}

// HandleSweep runs one sweep pass and reports its counts.
func (h *SweepHandler) HandleSweep(c echo.Context) error {
	report, err := h.reaperUC.Sweep(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Sweep failed", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, report)
}
