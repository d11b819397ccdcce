package models

import "time"

const (
	RoleAdmin   = "admin"
	RolePatient = ""
)

// User is a patient or staff account keyed by email.
type User struct {
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile holds the fields a user may set on sign-in or sign-up.
type UserProfile struct {
	Name string `json:"name"`
}

// UpsertResult mirrors the storage outcome of a profile upsert.
type UpsertResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
	Upserted bool  `json:"upserted"`
}
