package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess = "access"
	TokenTypeReset  = "reset"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

type Claims struct {
	UserID int64  `json:"uid"`
	RoleID int64  `json:"role,omitempty"`
	Type   string `json:"typ"` // "access" | "reset"
	jwt.RegisteredClaims
}

// Issue signs a session token for the given user. Rotating the secret
// invalidates everything previously issued; there is no grace period.
func (tm *TokenManager) Issue(userID, roleID int64) (string, error) {
	return tm.sign(Claims{UserID: userID, RoleID: roleID, Type: TokenTypeAccess})
}

// IssueReset signs a password-reset token. It carries a distinct type
// claim so a leaked reset link cannot double as a session token.
func (tm *TokenManager) IssueReset(userID int64) (string, error) {
	return tm.sign(Claims{UserID: userID, Type: TokenTypeReset})
}

func (tm *TokenManager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Parse verifies signature and expiry and returns the decoded claims.
// Malformed, tampered and expired tokens all come back as ErrInvalidToken.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
