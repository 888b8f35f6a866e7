package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of the plaintext. bcrypt
// embeds a fresh salt per call, so two hashes of the same input differ.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the digest. A
// malformed digest verifies as false rather than failing.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
