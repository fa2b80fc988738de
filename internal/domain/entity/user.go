// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record at the center of the credential store.
// The password is stored as a bcrypt hash and never leaves the domain in
// plaintext; Active gates whether the account may authenticate at all.
type User struct {
	ID           int64     // Opaque integer identity, assigned by the database at creation.
	Username     string    // Globally unique display handle.
	Email        string    // Globally unique address, doubles as the token subject.
	PasswordHash string    // bcrypt hash of the password; never serialized.
	Roles        Roles     // Non-empty ordered role set; defaults to RoleUser on creation.
	Active       bool      // Deactivated accounts cannot authenticate.
	CreatedAt    time.Time // Set once at creation, immutable afterwards.
}
