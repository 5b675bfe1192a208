package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Generate("admin")
	require.NoError(t, err)

	sub, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	a := NewTokenManager([]byte("secret-a"), time.Hour)
	b := NewTokenManager([]byte("secret-b"), time.Hour)

	token, err := a.Generate("admin")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.Generate("admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordChecker(t *testing.T) {
	hash, err := HashPassword("right")
	require.NoError(t, err)
	p := NewPasswordChecker(hash)

	assert.NoError(t, p.Check("right"))
	assert.ErrorIs(t, p.Check("wrong"), ErrPasswordMismatch)
	assert.ErrorIs(t, p.Check(""), ErrPasswordMismatch)
	assert.ErrorIs(t, NewPasswordChecker("").Check("right"), ErrPasswordMismatch)
}
