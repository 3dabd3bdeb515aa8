package store

import "golang.org/x/crypto/bcrypt"

// HashPassword produces the stored form of a password. bcrypt embeds a fresh
// random 16-byte salt per call, so hashing the same password twice yields
// different stored forms.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword recomputes the digest with the embedded salt and compares.
// Malformed stored forms verify as false, never as an error to the caller.
func VerifyPassword(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
