package handler

import (
	"net/http"

	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles login, registration and the user list.
type AuthHandler struct {
	*BaseHandler
	authUseCase domain.AuthUseCase
	store       domain.Store
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authUseCase domain.AuthUseCase, store domain.Store, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authUseCase: authUseCase,
		store:       store,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            string `json:"role" validate:"required"`
	TeamID          int    `json:"teamId"`
	TeamIDs         []int  `json:"teamIds"`
}

// PostLogin handles credential checks. The response never carries the
// password field.
func (h *AuthHandler) PostLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "login").WithField("email", req.Email)
	logEntry.Info("Authenticating user")

	user, err := h.authUseCase.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logEntry.WithError(err).Warn("Authentication failed")
		return writeDomainError(c, err)
	}

	logEntry.WithField("role", user.Role).Info("User authenticated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(*user),
	})
}

// PostRegister handles new account creation.
func (h *AuthHandler) PostRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "register").WithFields(logrus.Fields{
		"email": req.Email,
		"role":  req.Role,
	})
	logEntry.Info("Registering user")

	user, err := h.authUseCase.Register(c.Request().Context(), domain.Registration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		TeamID:          req.TeamID,
		TeamIDs:         req.TeamIDs,
	})
	if err != nil {
		logEntry.WithError(err).Warn("Registration failed")
		return writeDomainError(c, err)
	}

	logEntry.WithField("user_id", user.ID).Info("User registered")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": toAPIUser(*user),
	})
}

// GetUsers handles the full user list snapshot.
func (h *AuthHandler) GetUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	users, err := h.store.GetAllUsers(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list users")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": toAPIUsers(users),
	})
}
