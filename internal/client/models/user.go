// Package models defines the CampusKart domain entities persisted in the
// local store: users, the active session and marketplace items.
package models

import (
	"regexp"
	"time"
)

// Role controls what a user may do in the marketplace. Everyone can browse
// and buy; only RoleBuyerAndSeller may post items.
type Role string

const (
	RoleBuyer          Role = "buyer"
	RoleBuyerAndSeller Role = "buyer_and_seller"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleBuyerAndSeller
}

// emailRe accepts local@domain.tld with no whitespace, the same shape the
// signup form accepts.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// User is an account record. Fields are never mutated after registration and
// the record is never deleted; items snapshot seller fields from it at post
// time.
type User struct {
	// ID is a globally unique identifier assigned at registration.
	ID string `json:"id"`

	// Name is the display name, at least two characters.
	Name string `json:"name"`

	// Email is unique across all users (exact, case-sensitive match).
	Email string `json:"email"`

	// Credential is the opaque verifier produced by the active credential
	// policy. With the baseline plain policy this is the password itself.
	Credential string `json:"password"`

	// College is the user's campus, at least two characters.
	College string `json:"college"`

	// Role decides whether the user may post items.
	Role Role `json:"role"`

	// CreatedAt is the registration time in UTC.
	CreatedAt time.Time `json:"createdAt"`
}
