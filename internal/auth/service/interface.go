// Package service provides the credential hashing used for employee passwords.
//
// Hashes are one-way and salted, so hashing the same password twice yields
// different strings. Verification recognizes every supported algorithm so that
// hashes written under a previous configuration keep working.
package service

// CredentialHasher hashes and verifies raw employee passwords.
type CredentialHasher interface {
	// Hash returns a salted one-way hash of raw.
	Hash(raw string) (string, error)

	// Verify reports whether raw matches hash. Malformed hashes never match.
	Verify(raw string, hash string) bool
}

// Algorithm names a supported hashing scheme.
type Algorithm string

const (
	// AlgorithmArgon2id hashes with Argon2id in PHC string format.
	AlgorithmArgon2id Algorithm = "argon2id"

	// AlgorithmBcrypt hashes with bcrypt, compatible with hashes produced by
	// Spring Security's BCryptPasswordEncoder.
	AlgorithmBcrypt Algorithm = "bcrypt"
)
