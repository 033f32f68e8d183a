package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

// TokenIssuer 负责签发和校验访问令牌
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (*Claims, error)
}

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type JWTIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewJWTIssuer(secret string, lifetime time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	issuedAt := i.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.lifetime)),
		},
	})

	ss, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return ss, nil
}

func (i *JWTIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
