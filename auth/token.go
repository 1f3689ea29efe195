package auth

import (
	"errors"
	"time"

	"restaurant-order-api/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers absent, malformed and badly signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	// Both errors mean "unauthenticated"; they are separate for logging only.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed token payload: identity, role and an absolute
// expiry in epoch seconds.
type Claims struct {
	ID      uint            `json:"id"`
	Email   string          `json:"email"`
	Role    models.UserRole `json:"role"`
	Expires int64           `json:"expires"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed session tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a token service for the given shared secret,
// HMAC algorithm name (HS256/HS384/HS512) and token lifetime. Unknown
// algorithm names fall back to HS256.
func NewTokenService(secret, algorithm string, ttl time.Duration) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate signs a token for the user and returns it with its expiry time.
func (s *TokenService) Generate(user *models.User) (string, time.Time, error) {
	expiresAt := s.now().Add(s.ttl)
	claims := Claims{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Expires: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate parses and verifies a token string. It returns ErrTokenInvalid
// when the token is malformed or the signature does not check out, and
// ErrTokenExpired when the expires claim is in the past.
func (s *TokenService) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Expires <= s.now().Unix() {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
