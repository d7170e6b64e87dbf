package handler

import (
	"net/http"

	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler handles the global counters and the totals consistency check.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetGlobalStats handles the admin dashboard counters.
func (h *StatsHandler) GetGlobalStats(c echo.Context) error {
	logEntry := h.logRequest(c, "global_stats")
	logEntry.Info("Getting global statistics")

	stats, err := h.statsUseCase.GlobalStats(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get global stats")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}

// GetConsistency handles the reconciliation between materialized team totals
// and the sums derived from approved activities.
func (h *StatsHandler) GetConsistency(c echo.Context) error {
	logEntry := h.logRequest(c, "consistency_check")
	logEntry.Info("Verifying team totals")

	drifts, err := h.statsUseCase.VerifyTotals(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to verify totals")
		return writeDomainError(c, err)
	}

	if len(drifts) > 0 {
		logEntry.WithFields(logrus.Fields{"drift_count": len(drifts)}).Warn("Team totals diverged")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"consistent": len(drifts) == 0,
		"drifts":     drifts,
	})
}
