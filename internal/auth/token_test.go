package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

func fixedIssuer(secret string, now time.Time) *JWTIssuer {
	i := NewJWTIssuer(secret, time.Hour)
	i.now = func() time.Time { return now }
	return i
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	issuer := fixedIssuer("super-secret", now)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, now, claims.IssuedAt.Time.UTC())
	assert.Equal(t, time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestIssue_ClaimNames(t *testing.T) {
	issuer := NewJWTIssuer("k", time.Hour)
	tok, err := issuer.Issue("u1")
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, parsed)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed["userId"])
	assert.Contains(t, parsed, "exp")
	assert.Contains(t, parsed, "iat")
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	tok, err := fixedIssuer("secret", issued).Issue("u1")
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewJWTIssuer("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewJWTIssuer("wrong-secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	_, err := NewJWTIssuer("k", time.Hour).Verify("not.a.jwt")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	ss, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewJWTIssuer("k", time.Hour).Verify(ss)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_MissingUserID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	ss, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewJWTIssuer("k", time.Hour).Verify(ss)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
