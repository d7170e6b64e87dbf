package handler

import (
	"errors"
	"net/http"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/format"

	"github.com/labstack/echo/v4"
)

// Helpers converting domain models into API payloads.

type activityResponse struct {
	domain.Activity
	ValorFormatado string `json:"valorFormatado"`
}

func toAPIActivity(activity domain.Activity) activityResponse {
	return activityResponse{
		Activity:       activity,
		ValorFormatado: format.Valor(activity.Tipo, activity.Valor),
	}
}

func toAPIActivities(activities []domain.Activity) []activityResponse {
	result := make([]activityResponse, len(activities))
	for i, activity := range activities {
		result[i] = toAPIActivity(activity)
	}
	return result
}

func toAPIUser(user domain.User) domain.User {
	return user.Sanitized()
}

func toAPIUsers(users []domain.User) []domain.User {
	result := make([]domain.User, len(users))
	for i, user := range users {
		result[i] = user.Sanitized()
	}
	return result
}

type teamResponse struct {
	domain.Team
	TotalFormatado string `json:"totalFormatado"`
}

func toAPITeam(team domain.Team) teamResponse {
	return teamResponse{
		Team:           team,
		TotalFormatado: "R$ " + format.Number(team.Total, 2),
	}
}

func toAPITeams(teams []domain.Team) []teamResponse {
	result := make([]teamResponse, len(teams))
	for i, team := range teams {
		result[i] = toAPITeam(team)
	}
	return result
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func getHTTPStatusCode(err error) int {
	switch {
	// Bad Request errors (400) - validation
	case errors.Is(err, domain.ErrInvalidValor),
		errors.Is(err, domain.ErrInvalidTipo),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrMotivoRequired),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest

	// Unauthorized (401)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound

	// Conflict errors (409)
	case errors.Is(err, domain.ErrActivityAlreadyDecided),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}
