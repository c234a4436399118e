// Package password provides one-way password hashing backed by bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to every new digest.
const Cost = 10

// Hash produces a salted one-way digest of plain.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. The comparison is constant
// time (bcrypt recomputes and compares internally). A malformed digest is a
// mismatch, never an error the caller has to distinguish.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
