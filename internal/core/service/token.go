package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloglist/blog-service/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenIssuer mints and verifies the stateless HS256 session tokens.
// Verification needs only the shared secret, so any instance holding it can
// validate a token without a store lookup; the trade-off is that logout is
// client-side only and a token stays valid until its expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given identity, expiring ttl from now.
func (t *TokenIssuer) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       identity.UserID,
		"username": identity.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify validates the signature and expiry and returns the asserted identity.
// Expiry is strict: a token presented at the exact expiry instant is rejected.
// Failures surface as domain.ErrTokenExpired or domain.ErrInvalidToken.
func (t *TokenIssuer) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if userID == "" || username == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{UserID: userID, Username: username}, nil
}
