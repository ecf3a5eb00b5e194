package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)

	tok, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", uid)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := &Manager{secret: []byte("secret"), ttl: -time.Minute}
	tok, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewManager("wrong-secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	tok, err := m.Issue("u3")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = m.Verify(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	_, err := m.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must never pass, even with a valid shape.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u4"})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_MissingUserID(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	tok, err := m.Issue("")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", 0)
	require.Equal(t, DefaultTTL, m.ttl)
}
