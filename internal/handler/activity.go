package handler

import (
	"net/http"
	"strconv"

	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ActivityHandler handles activity submission, decisions and the activity
// list snapshots.
type ActivityHandler struct {
	*BaseHandler
	activityUseCase domain.ActivityUseCase
	store           domain.Store
}

// NewActivityHandler creates a new ActivityHandler instance.
func NewActivityHandler(activityUseCase domain.ActivityUseCase, store domain.Store, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler:     NewBaseHandler(logger),
		activityUseCase: activityUseCase,
		store:           store,
	}
}

type submitRequest struct {
	TeamID int    `json:"teamId" validate:"required"`
	UserID int    `json:"userId"`
	Tipo   string `json:"tipo" validate:"required"`
	Nome   string `json:"nome" validate:"required"`
	Valor  string `json:"valor" validate:"required"`
	Data   string `json:"data"`
}

type decisionRequest struct {
	Decision string `json:"decision" validate:"required"`
	Motivo   string `json:"motivo"`
}

// PostActivity handles a weekly activity submission.
func (h *ActivityHandler) PostActivity(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "submit_activity").WithFields(logrus.Fields{
		"team_id": req.TeamID,
		"tipo":    req.Tipo,
	})
	logEntry.Info("Submitting activity")

	activity, err := h.activityUseCase.Submit(c.Request().Context(), domain.ActivitySubmission{
		TeamID: req.TeamID,
		UserID: req.UserID,
		Tipo:   req.Tipo,
		Nome:   req.Nome,
		Valor:  req.Valor,
		Data:   req.Data,
	})
	if err != nil {
		logEntry.WithError(err).Warn("Failed to submit activity")
		return writeDomainError(c, err)
	}

	logEntry.WithField("activity_id", activity.ID).Info("Activity submitted")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"activity": toAPIActivity(*activity),
	})
}

// PostActivityDecision handles the mentor/admin approval or rejection.
func (h *ActivityHandler) PostActivityDecision(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "activity id must be an integer"))
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "decide_activity").WithFields(logrus.Fields{
		"activity_id": id,
		"decision":    req.Decision,
	})
	logEntry.Info("Deciding activity")

	activity, err := h.activityUseCase.Decide(c.Request().Context(), id, req.Decision, req.Motivo)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to decide activity")
		return writeDomainError(c, err)
	}

	logEntry.WithField("status", activity.Status).Info("Activity decided")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"activity": toAPIActivity(*activity),
	})
}

// GetActivities handles the full activity list snapshot.
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	logEntry := h.logRequest(c, "list_activities")

	activities, err := h.store.GetAllActivities(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list activities")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"activities": toAPIActivities(activities),
	})
}

// GetPendingActivities handles the pending queue snapshot.
func (h *ActivityHandler) GetPendingActivities(c echo.Context) error {
	logEntry := h.logRequest(c, "list_pending")

	pending, err := h.store.GetPendingActivities(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list pending activities")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pending": toAPIActivities(pending),
	})
}

// GetRecentActivities handles the recent-approvals queue snapshot.
func (h *ActivityHandler) GetRecentActivities(c echo.Context) error {
	logEntry := h.logRequest(c, "list_recent")

	recent, err := h.store.GetRecentActivities(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list recent activities")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recent": toAPIActivities(recent),
	})
}
