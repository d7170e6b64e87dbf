package domain

// TeamStats holds per-team counters computed from the current activity
// snapshot. Total comes from the team record, not recomputed.
type TeamStats struct {
	Total              float64 `json:"total"`
	TotalActivities    int     `json:"totalActivities"`
	ApprovedActivities int     `json:"approvedActivities"`
	PendingActivities  int     `json:"pendingActivities"`
	RejectedActivities int     `json:"rejectedActivities"`
}

// GlobalStats holds the admin dashboard counters.
type GlobalStats struct {
	TotalTeams        int     `json:"totalTeams"`
	TotalUsers        int     `json:"totalUsers"`
	TotalActivities   int     `json:"totalActivities"`
	TotalRaised       float64 `json:"totalRaised"`
	PendingActivities int     `json:"pendingActivities"`
}

// TotalDrift reports a team whose materialized total diverged from the sum
// derived from its approved activities.
type TotalDrift struct {
	TeamID   int     `json:"teamId"`
	TeamName string  `json:"teamName"`
	Recorded float64 `json:"recorded"`
	Derived  float64 `json:"derived"`
}
