package users

import "time"

// User represents a user account. RoleID is the canonical system role
// reference; zero means no role assigned.
type User struct {
	ID        int64
	Email     string
	Name      string
	IsActive  bool
	RoleID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
