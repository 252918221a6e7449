package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the rest of the system assumes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
// The salt is random and baked into the output, so two hashes of the same
// input differ.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
