package service

import (
	"fmt"
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xenosis/employees/internal/errors"
)

// Config selects the algorithm used for new hashes.
type Config struct {
	Algorithm Algorithm
	// Policy is the Argon2id cost policy: "interactive" or "moderate".
	Policy string
	// BcryptCost is only used with AlgorithmBcrypt.
	BcryptCost int
}

// credentialHasher hashes with the configured algorithm and verifies any supported one.
type credentialHasher struct {
	algorithm  Algorithm
	argon      *pwdhash.PasswordHasher
	bcryptCost int
}

// NewCredentialHasher creates a CredentialHasher from cfg.
func NewCredentialHasher(cfg Config) (CredentialHasher, error) {
	var (
		argon *pwdhash.PasswordHasher
		err   error
	)
	switch strings.ToLower(cfg.Policy) {
	case "", "interactive":
		argon, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	case "moderate":
		argon, err = pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	default:
		return nil, fmt.Errorf("unsupported credential hash policy: %s", cfg.Policy)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmArgon2id
	}

	cost := cfg.BcryptCost
	switch algorithm {
	case AlgorithmArgon2id:
	case AlgorithmBcrypt:
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
	default:
		return nil, fmt.Errorf("unsupported credential hash algorithm: %s", algorithm)
	}

	return &credentialHasher{
		algorithm:  algorithm,
		argon:      argon,
		bcryptCost: cost,
	}, nil
}

// Hash hashes raw with the configured algorithm.
func (h *credentialHasher) Hash(raw string) (string, error) {
	if h.algorithm == AlgorithmBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.bcryptCost)
		if err != nil {
			return "", apperrors.Wrap(err, "failed to hash credential")
		}
		return string(hashed), nil
	}

	hashed, err := h.argon.Hash([]byte(raw))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash credential")
	}
	return hashed, nil
}

// Verify checks raw against hash, detecting the algorithm from the hash prefix.
func (h *credentialHasher) Verify(raw string, hash string) bool {
	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
	}

	ok, err := h.argon.Verify([]byte(raw), hash)
	if err != nil {
		return false
	}
	return ok
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
