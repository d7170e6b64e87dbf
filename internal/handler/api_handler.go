package handler

import (
	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*AuthHandler
	*ActivityHandler
	*TeamHandler
	*StatsHandler
	*BackupHandler
}

func NewAPIHandler(
	authUseCase domain.AuthUseCase,
	activityUseCase domain.ActivityUseCase,
	statsUseCase domain.StatsUseCase,
	store domain.Store,
	logger *logrus.Logger,
) *APIHandler {

	return &APIHandler{
		AuthHandler:     NewAuthHandler(authUseCase, store, logger),
		ActivityHandler: NewActivityHandler(activityUseCase, store, logger),
		TeamHandler:     NewTeamHandler(statsUseCase, store, logger),
		StatsHandler:    NewStatsHandler(statsUseCase, logger),
		BackupHandler:   NewBackupHandler(store, logger),
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (h *APIHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.PostLogin)
	e.POST("/auth/register", h.PostRegister)

	e.GET("/users", h.GetUsers)

	e.GET("/teams", h.GetTeams)
	e.POST("/teams", h.PostTeam)
	e.GET("/teams/ranking", h.GetRanking)
	e.GET("/teams/:id/stats", h.GetTeamStats)

	e.POST("/activities", h.PostActivity)
	e.GET("/activities", h.GetActivities)
	e.GET("/activities/pending", h.GetPendingActivities)
	e.GET("/activities/recent", h.GetRecentActivities)
	e.POST("/activities/:id/decision", h.PostActivityDecision)

	e.GET("/stats", h.GetGlobalStats)
	e.GET("/stats/consistency", h.GetConsistency)

	e.GET("/backup", h.GetBackup)
	e.POST("/backup", h.PostBackup)
}
