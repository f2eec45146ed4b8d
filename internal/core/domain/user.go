package domain

import "time"

// Role is the privilege level attached to a user.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsPrivileged reports whether r is admin or superadmin.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// IsAssignable reports whether r may be set through a role change.
// Superadmin is seeded out-of-band and never assignable.
func (r Role) IsAssignable() bool {
	return r == RoleUser || r == RoleAdmin
}

// AccountType describes what a user does on the marketplace.
type AccountType string

const (
	AccountBuyer  AccountType = "buyer"
	AccountSeller AccountType = "seller"
	AccountBoth   AccountType = "both"
)

func (a AccountType) IsValid() bool {
	return a == AccountBuyer || a == AccountSeller || a == AccountBoth
}

const DefaultAvatar = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// User models a registered account.
type User struct {
	ID           string      `json:"_id"`
	Username     string      `json:"username"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	PasswordHash string      `json:"-"`
	Avatar       string      `json:"avatar,omitempty"`
	Role         Role        `json:"role"`
	AccountType  AccountType `json:"accountType"`
	Wishlist     []string    `json:"wishlist"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// HasWishlisted reports whether listingID is already in the wishlist.
func (u *User) HasWishlisted(listingID string) bool {
	for _, id := range u.Wishlist {
		if id == listingID {
			return true
		}
	}
	return false
}

// UserSummary is the display projection used when expanding references.
type UserSummary struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}
