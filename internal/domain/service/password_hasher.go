// Package service declares the ports the use cases need from infrastructure: hashing, sessions,
// geocoding, event publishing and QR rendering.
package service

// PasswordHasher stores account passwords as salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}
