package user

import "time"

type Role string

const (
	RoleOwner  Role = "owner"  // full access to the financial screens
	RoleAdmin  Role = "admin"  // front-desk administrator cabinet
	RoleMaster Role = "master" // own monthly results only
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleMaster:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role

	// StaffID links master and admin accounts to their staff
	// directory entry. Owners have no staff entry.
	StaffID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwner checks if the user holds the owner role
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanViewFinancials checks if the user may open company-wide money screens
func (u *User) CanViewFinancials() bool {
	return u.Role == RoleOwner
}
