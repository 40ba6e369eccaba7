// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record behind every account. The ID is assigned by
// the store on creation and never changes afterwards.
type User struct {
	ID           string    // Store-assigned unique identifier (hex ObjectID).
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // Login identifier, globally unique across all users.
	PasswordHash string    // Salted bcrypt digest. Never the plaintext password.
	Age          int       // The user's age in years.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
