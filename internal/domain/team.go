package domain

// Team represents a student team. Total is a materialized running sum of the
// values of this team's approved activities; it is mutated only by the decide
// path. The Activities field is a legacy denormalized list kept for snapshot
// compatibility — the Activities collection is the source of truth.
type Team struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Mentor     string     `json:"mentor"`
	Total      float64    `json:"total"`
	Activities []Activity `json:"activities"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
}

// TeamPatch describes a partial team update. Nil fields are left untouched.
type TeamPatch struct {
	Name   *string
	Mentor *string
	Total  *float64
}
