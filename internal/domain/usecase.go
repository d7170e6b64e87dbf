package domain

import "context"

// ActivityUseCase defines the activity lifecycle: submission and decision.
type ActivityUseCase interface {
	Submit(ctx context.Context, submission ActivitySubmission) (*Activity, error)
	Decide(ctx context.Context, activityID int, decision, motivo string) (*Activity, error)
}

// StatsUseCase defines the read-only aggregation over the store snapshot.
type StatsUseCase interface {
	TeamStats(ctx context.Context, teamID int) (*TeamStats, error)
	GlobalStats(ctx context.Context) (*GlobalStats, error)
	Ranking(ctx context.Context) ([]Team, error)
	// VerifyTotals reconciles each team's materialized total against the sum
	// derived from its approved activities.
	VerifyTotals(ctx context.Context) ([]TotalDrift, error)
}

// AuthUseCase defines the session gate: credential check and registration.
type AuthUseCase interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Register(ctx context.Context, registration Registration) (*User, error)
}

// CredentialVerifier abstracts how stored credentials are encoded and
// compared, so the comparison strategy can be swapped without touching the
// auth call sites.
type CredentialVerifier interface {
	Encode(password string) (string, error)
	Verify(stored, provided string) bool
}
