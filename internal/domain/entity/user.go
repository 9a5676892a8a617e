package entity

import "time"

// Role is the account role chosen at registration. It never changes afterwards.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleSeller   Role = "seller"
	RoleLandlord Role = "landlord"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

// ListingRoles are the roles allowed to create property listings.
var ListingRoles = []Role{RoleSeller, RoleLandlord, RoleAgent}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleLandlord, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// NeedsApproval reports whether accounts with this role require admin
// approval before they may publish listings.
func (r Role) NeedsApproval() bool {
	switch r {
	case RoleSeller, RoleLandlord, RoleAgent:
		return true
	}
	return false
}

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash and is never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Password     string    `json:"-"`
	Role         Role      `json:"role"`
	IsVerified   bool      `json:"isVerified"`
	IsApproved   bool      `json:"isApproved"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName joins first and last name for display and emails.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
