// Package password wraps bcrypt hashing behind a minimal contract: one-way
// salted hashing on write, constant-time comparison on verify.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from a plaintext password. The cost is
// bcrypt's default adaptive work factor.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch or a
// malformed hash both yield false; this never panics.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
