package domain

import "errors"

// Domain errors.
var (
	// Validation errors
	ErrInvalidValor     = errors.New("valor is not a finite number")
	ErrInvalidTipo      = errors.New("invalid activity tipo")
	ErrInvalidDecision  = errors.New("invalid decision")
	ErrMotivoRequired   = errors.New("motivo is required for rejection")
	ErrInvalidRole      = errors.New("invalid user role")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Not found errors
	ErrUserNotFound     = errors.New("user not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrActivityNotFound = errors.New("activity not found")

	// State errors
	ErrActivityAlreadyDecided = errors.New("activity already decided")
	ErrEmailAlreadyExists     = errors.New("email already registered")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Storage errors (wrapped around the underlying cause)
	ErrStorage = errors.New("storage failure")
)

// HTTPError is the error body returned to API clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// ErrorMapping maps domain errors to HTTP error bodies.
var ErrorMapping = map[error]HTTPError{
	ErrInvalidValor:     {Code: "INVALID_VALOR", Message: "valor must be a finite base-10 number"},
	ErrInvalidTipo:      {Code: "INVALID_TIPO", Message: "tipo must be alimentos, fundos or evento"},
	ErrInvalidDecision:  {Code: "INVALID_DECISION", Message: "decision must be Aprovada or Rejeitada"},
	ErrMotivoRequired:   {Code: "MOTIVO_REQUIRED", Message: "motivo is required when rejecting an activity"},
	ErrInvalidRole:      {Code: "INVALID_ROLE", Message: "role must be aluno, mentor or admin"},
	ErrPasswordTooShort: {Code: "PASSWORD_TOO_SHORT", Message: "password must be at least 6 characters"},
	ErrPasswordMismatch: {Code: "PASSWORD_MISMATCH", Message: "password and confirmation do not match"},

	ErrUserNotFound:     {Code: "NOT_FOUND", Message: "user not found"},
	ErrTeamNotFound:     {Code: "NOT_FOUND", Message: "team not found"},
	ErrActivityNotFound: {Code: "NOT_FOUND", Message: "activity not found"},

	ErrActivityAlreadyDecided: {Code: "ALREADY_DECIDED", Message: "activity is already in a terminal state"},
	ErrEmailAlreadyExists:     {Code: "EMAIL_EXISTS", Message: "email already registered"},

	ErrInvalidCredentials: {Code: "INVALID_CREDENTIALS", Message: "invalid email or password"},

	ErrStorage: {Code: "STORAGE_ERROR", Message: "persistent storage failure"},
}

// ToHTTPError resolves a domain error (possibly wrapped) to its HTTP body.
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
