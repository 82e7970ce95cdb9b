package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassphrase(t *testing.T) {
	_, err := HashPassphrase("short")
	assert.ErrorIs(t, err, ErrWeakPassphrase)

	hash, err := HashPassphrase("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	a := NewPassphraseAuthenticator(hash)
	subject, err := a.Authenticate(context.Background(), "correct horse")
	require.NoError(t, err)
	assert.Equal(t, OwnerSubject, subject)

	for _, bad := range []string{"", "wrong horse", "correct horse "} {
		_, err := a.Authenticate(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "passphrase %q", bad)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, expiresAt, err := m.Generate(OwnerSubject)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, OwnerSubject, claims.Subject)
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Generate(OwnerSubject)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewJWTManager("other-secret", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
