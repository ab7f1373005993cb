package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenType is the scheme label returned alongside issued tokens.
const TokenType = "Bearer"

// Token verification failures. The HTTP boundary collapses all of these into
// one generic unauthorized response; the split exists for tests and logs.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed   = errors.New("token malformed")
)

// TokenManager issues and verifies signed access tokens. It is stateless:
// validity is decided purely by signature and expiry at verification time.
type TokenManager struct {
	secret        []byte
	ttl           time.Duration
	identityClaim string
	now           func() time.Time
}

// NewTokenManager builds a manager. A non-positive TTL falls back to eight
// hours, the process default.
func NewTokenManager(secret string, ttl time.Duration, identityClaim string) *TokenManager {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	if identityClaim == "" {
		identityClaim = "user_id"
	}
	return &TokenManager{
		secret:        []byte(secret),
		ttl:           ttl,
		identityClaim: identityClaim,
		now:           time.Now,
	}
}

// Issue signs a token carrying the user identity claim and an absolute
// expiry of now plus the configured validity window.
func (tm *TokenManager) Issue(userID int64) (string, time.Time, error) {
	expiresAt := tm.now().Add(tm.ttl)
	claims := jwt.MapClaims{
		tm.identityClaim: userID,
		"exp":            jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and extracts the user identity claim.
func (tm *TokenManager) Verify(tokenStr string) (int64, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSignature
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return 0, ErrTokenMalformed
	}

	raw, ok := claims[tm.identityClaim]
	if !ok {
		return 0, ErrTokenMalformed
	}
	id, ok := raw.(float64)
	if !ok || id != float64(int64(id)) {
		return 0, ErrTokenMalformed
	}
	return int64(id), nil
}
