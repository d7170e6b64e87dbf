package domain

import "context"

// Snapshot is the full contents of the five collections, as produced by
// Export and consumed by Import. Nil collections are skipped on import.
type Snapshot struct {
	Users      []User     `json:"users"`
	Teams      []Team     `json:"teams"`
	Activities []Activity `json:"activities"`
	Pending    []Activity `json:"pending"`
	Recent     []Activity `json:"recent"`
	ExportedAt string     `json:"exportedAt,omitempty"`
}

// Store defines the contract of the persistent store owning the five
// collections. All readers receive fresh copies; all writes are serialized
// inside the implementation.
type Store interface {
	// Initialize seeds the starter data set on first run. Idempotent.
	Initialize(ctx context.Context) error
	// Clear removes all collections. Intended for teardown in tests.
	Clear(ctx context.Context) error

	GetAllUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user User) (*User, error)
	UpdateUser(ctx context.Context, id int, patch UserPatch) (*User, error)

	GetAllTeams(ctx context.Context) ([]Team, error)
	GetTeamByID(ctx context.Context, id int) (*Team, error)
	CreateTeam(ctx context.Context, team Team) (*Team, error)
	UpdateTeam(ctx context.Context, id int, patch TeamPatch) (*Team, error)

	GetAllActivities(ctx context.Context) ([]Activity, error)
	GetActivitiesByTeam(ctx context.Context, teamID int) ([]Activity, error)
	CreateActivity(ctx context.Context, activity Activity) (*Activity, error)
	// DecideActivity applies the terminal transition atomically: activity
	// status/motivo, team total on approval, the Recent push and the Pending
	// removal. It is the authoritative terminal-state check.
	DecideActivity(ctx context.Context, id int, status, motivo string) (*Activity, error)
	GetPendingActivities(ctx context.Context) ([]Activity, error)
	GetRecentActivities(ctx context.Context) ([]Activity, error)

	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snapshot Snapshot) error
}
