package usecase_test

import (
	"context"
	"strings"
	"testing"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUseCase_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uc := usecase.NewAuthUseCase(s, usecase.PlainVerifier{})

	user, err := uc.Authenticate(ctx, "joao@fecap.com", "aluno123")
	require.NoError(t, err)
	assert.Equal(t, "João Aluno", user.Name)
	assert.Equal(t, domain.RoleAluno, user.Role)
	assert.Equal(t, 1, user.TeamID)
	assert.Empty(t, user.Password)
}

func TestAuthUseCase_Authenticate_NoMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uc := usecase.NewAuthUseCase(s, usecase.PlainVerifier{})

	_, err := uc.Authenticate(ctx, "nonexistent@x.com", "anything")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Authenticate(ctx, "joao@fecap.com", "wrongpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthUseCase_Register_Success(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uc := usecase.NewAuthUseCase(s, usecase.PlainVerifier{})

	user, err := uc.Register(ctx, domain.Registration{
		Name: "Pedro Souza", Email: "pedro@fecap.com",
		Password: "senha123", ConfirmPassword: "senha123",
		Role: domain.RoleAluno, TeamID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, user.ID)
	assert.Empty(t, user.Password)

	authed, err := uc.Authenticate(ctx, "pedro@fecap.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestAuthUseCase_Register_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uc := usecase.NewAuthUseCase(s, usecase.PlainVerifier{})

	testCases := []struct {
		name         string
		registration domain.Registration
		expected     error
	}{
		{
			name: "Password too short",
			registration: domain.Registration{
				Name: "Pedro", Email: "pedro@fecap.com",
				Password: "abc", ConfirmPassword: "abc", Role: domain.RoleAluno,
			},
			expected: domain.ErrPasswordTooShort,
		},
		{
			name: "Password mismatch",
			registration: domain.Registration{
				Name: "Pedro", Email: "pedro@fecap.com",
				Password: "senha123", ConfirmPassword: "senha124", Role: domain.RoleAluno,
			},
			expected: domain.ErrPasswordMismatch,
		},
		{
			name: "Unknown role",
			registration: domain.Registration{
				Name: "Pedro", Email: "pedro@fecap.com",
				Password: "senha123", ConfirmPassword: "senha123", Role: "diretor",
			},
			expected: domain.ErrInvalidRole,
		},
		{
			name: "Duplicate email",
			registration: domain.Registration{
				Name: "Outro João", Email: "joao@fecap.com",
				Password: "senha123", ConfirmPassword: "senha123", Role: domain.RoleAluno,
			},
			expected: domain.ErrEmailAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.registration)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	// no failed registration may persist a user
	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestAuthUseCase_BcryptVerifier(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	uc := usecase.NewAuthUseCase(s, usecase.BcryptVerifier{})

	_, err := uc.Register(ctx, domain.Registration{
		Name: "Pedro Souza", Email: "pedro@fecap.com",
		Password: "senha123", ConfirmPassword: "senha123", Role: domain.RoleAluno, TeamID: 2,
	})
	require.NoError(t, err)

	// the stored credential is a hash, not the plaintext
	stored, err := s.GetUserByEmail(ctx, "pedro@fecap.com")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))

	authed, err := uc.Authenticate(ctx, "pedro@fecap.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "Pedro Souza", authed.Name)

	_, err = uc.Authenticate(ctx, "pedro@fecap.com", "senha124")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestNewVerifier_SelectsScheme(t *testing.T) {
	assert.IsType(t, usecase.BcryptVerifier{}, usecase.NewVerifier("bcrypt"))
	assert.IsType(t, usecase.PlainVerifier{}, usecase.NewVerifier("plain"))
	assert.IsType(t, usecase.PlainVerifier{}, usecase.NewVerifier(""))
}
