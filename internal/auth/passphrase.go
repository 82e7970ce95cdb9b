package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// OwnerSubject is the token subject issued to the gradebook owner.
const OwnerSubject = "owner"

// MinPassphraseLength is enforced when hashing a new passphrase.
const MinPassphraseLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid passphrase")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 8 characters")
)

// HashPassphrase returns the bcrypt hash stored under auth.passphrase_hash.
func HashPassphrase(passphrase string) (string, error) {
	if len(passphrase) < MinPassphraseLength {
		return "", ErrWeakPassphrase
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

// PassphraseAuthenticator checks a passphrase against a bcrypt hash.
type PassphraseAuthenticator struct {
	hash []byte
}

// NewPassphraseAuthenticator creates an authenticator for the given hash.
func NewPassphraseAuthenticator(hash string) *PassphraseAuthenticator {
	return &PassphraseAuthenticator{hash: []byte(hash)}
}

var _ Authenticator = (*PassphraseAuthenticator)(nil)

// Authenticate returns OwnerSubject when the passphrase matches.
func (a *PassphraseAuthenticator) Authenticate(_ context.Context, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(passphrase)); err != nil {
		return "", ErrInvalidCredentials
	}
	return OwnerSubject, nil
}
