package usecase

import (
	"context"
	"errors"

	"donation-dashboard-service/internal/domain"
)

const minPasswordLength = 6

// AuthUseCase implements the session gate: credential check and
// registration. The credential comparison strategy is injected.
type AuthUseCase struct {
	store    domain.Store
	verifier domain.CredentialVerifier
}

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(store domain.Store, verifier domain.CredentialVerifier) domain.AuthUseCase {
	return &AuthUseCase{
		store:    store,
		verifier: verifier,
	}
}

// Authenticate matches the credentials against the first user registered
// with the email and returns the user with the password stripped. A missing
// user and a wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.store.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !uc.verifier.Verify(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Register validates the form input, rejects duplicate emails and creates
// the user with the verifier-encoded password. Nothing is persisted when
// validation fails.
func (uc *AuthUseCase) Register(ctx context.Context, registration domain.Registration) (*domain.User, error) {
	if !domain.ValidRole(registration.Role) {
		return nil, domain.ErrInvalidRole
	}
	if registration.Password != registration.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if len(registration.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	_, err := uc.store.GetUserByEmail(ctx, registration.Email)
	if err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	encoded, err := uc.verifier.Encode(registration.Password)
	if err != nil {
		return nil, err
	}

	user, err := uc.store.CreateUser(ctx, domain.User{
		Role:     registration.Role,
		Name:     registration.Name,
		Email:    registration.Email,
		Password: encoded,
		TeamID:   registration.TeamID,
		TeamIDs:  registration.TeamIDs,
	})
	if err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}
