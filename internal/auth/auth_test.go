package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LoginAndVerify(t *testing.T) {
	svc := NewService("secret", time.Hour, "admin", "s3nha")

	token, err := svc.Login("admin", "s3nha")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestService_Login_WrongCredentials(t *testing.T) {
	svc := NewService("secret", time.Hour, "admin", "s3nha")

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "s3nha")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour, "admin", "s3nha")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Login("admin", "s3nha")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour, "admin", "s3nha")
	verifier := NewService("secret-b", time.Hour, "admin", "s3nha")

	token, err := issuer.Login("admin", "s3nha")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := NewService("secret", time.Hour, "admin", "s3nha")

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
