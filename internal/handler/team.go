package handler

import (
	"net/http"
	"strconv"

	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler handles the team list, team creation, per-team stats and the
// ranking.
type TeamHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
	store        domain.Store
}

// NewTeamHandler creates a new TeamHandler instance.
func NewTeamHandler(statsUseCase domain.StatsUseCase, store domain.Store, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
		store:        store,
	}
}

type createTeamRequest struct {
	Name   string `json:"name" validate:"required"`
	Mentor string `json:"mentor" validate:"required"`
}

// GetTeams handles the full team list snapshot.
func (h *TeamHandler) GetTeams(c echo.Context) error {
	logEntry := h.logRequest(c, "list_teams")

	teams, err := h.store.GetAllTeams(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list teams")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"teams": toAPITeams(teams),
	})
}

// PostTeam handles new team creation.
func (h *TeamHandler) PostTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_team").WithField("team_name", req.Name)
	logEntry.Info("Creating team")

	team, err := h.store.CreateTeam(c.Request().Context(), domain.Team{
		Name:   req.Name,
		Mentor: req.Mentor,
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		return writeDomainError(c, err)
	}

	logEntry.WithField("team_id", team.ID).Info("Team created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"team": toAPITeam(*team),
	})
}

// GetTeamStats handles the per-team counters.
func (h *TeamHandler) GetTeamStats(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "team id must be an integer"))
	}

	logEntry := h.logRequest(c, "team_stats").WithField("team_id", id)

	stats, err := h.statsUseCase.TeamStats(c.Request().Context(), id)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team stats")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"teamId": id,
		"stats":  stats,
	})
}

// GetRanking handles the teams ordered descending by total.
func (h *TeamHandler) GetRanking(c echo.Context) error {
	logEntry := h.logRequest(c, "ranking")

	teams, err := h.statsUseCase.Ranking(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get ranking")
		return writeDomainError(c, err)
	}

	logEntry.WithFields(logrus.Fields{"teams_count": len(teams)}).Info("Ranking retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ranking": toAPITeams(teams),
	})
}
