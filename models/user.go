package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id"`

	// FirstName and LastName are the display names of the user.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is the unique account identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized; used only for credential verification.
	PasswordHash string `json:"-"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// AvatarURL is an optional profile image location.
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Status reports whether the account is active. Deactivated accounts
	// keep their records but cannot be used until re-activated.
	Status bool `json:"status"`

	// Role is the role assigned to the user, resolved by the persistence
	// layer when the record is loaded. Nil when the user has no role.
	Role *Role `json:"role,omitempty"`

	// LastLoginAt records the most recent successful login.
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RoleName returns the name of the user's role, or "" when no role is set.
func (u User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// PublicUser is the reduced user representation returned by authentication
// endpoints. It carries no credential or lifecycle data.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      *Role  `json:"role,omitempty"`
}

// Public returns the reduced representation of the user suitable for
// authentication responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// UserUpdate describes a partial update of a user profile.
// Nil fields are left unchanged.
type UserUpdate struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	Status    *bool      `json:"-"`
	LastLogin *time.Time `json:"-"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Phone == nil && u.AvatarURL == nil && u.Status == nil && u.LastLogin == nil
}
