package usecase

import (
	"donation-dashboard-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// PlainVerifier compares stored and provided passwords as-is. This matches
// the legacy data set, where passwords are stored in plaintext.
type PlainVerifier struct{}

func (PlainVerifier) Encode(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(stored, provided string) bool {
	return stored == provided
}

// BcryptVerifier stores bcrypt hashes instead of plaintext. Seeded accounts
// keep plaintext passwords, so switching schemes only affects users
// registered afterwards.
type BcryptVerifier struct{}

func (BcryptVerifier) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, provided string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil
}

// NewVerifier selects the credential strategy by config scheme name.
func NewVerifier(scheme string) domain.CredentialVerifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
