// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImage is the image reference given to every new account.
const DefaultProfileImage = "default.jpg"

// User is the identity root of the marketplace. A user owns at most one Shop.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique, case-sensitive handle.
	Email        string    // Unique login identifier, stored lower-cased.
	PasswordHash string    // bcrypt hash of the password, never the plaintext.
	ImageFile    string    // Reference to the profile picture.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
