package entity

import "time"

// User is the aggregate root for the authentication domain.
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext
// password never reaches the repository layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
