package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades hash latency against brute-force resistance.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the password. The
// salt is random per call, so hashing the same password twice yields
// different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword verifies a password against a stored digest in constant
// time. A malformed digest is treated as a mismatch, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
