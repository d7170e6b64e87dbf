package domain

// User roles.
const (
	RoleAluno  = "aluno"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// User represents an account in the system: a student, a mentor or an admin.
// TeamID is set for students, TeamIDs for mentors.
type User struct {
	ID        int    `json:"id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	TeamID    int    `json:"teamId,omitempty"`
	TeamIDs   []int  `json:"teamIds,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Sanitized returns a copy of the user with the password field stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAluno, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// UserPatch describes a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Role     *string
	Name     *string
	Email    *string
	Password *string
	TeamID   *int
	TeamIDs  *[]int
}

// Registration carries the register form input. ConfirmPassword is checked
// against Password before anything is persisted.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	TeamID          int
	TeamIDs         []int
}
