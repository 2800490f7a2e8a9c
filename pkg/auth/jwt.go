package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	SecretKey string
	Issuer    string
}

// JWTResolver resolves principals from HS256-signed bearer tokens.
// The subject claim carries the principal identifier and the name claim
// carries the display name.
type JWTResolver struct {
	config JWTConfig
}

// NewJWTResolver creates a JWT-backed principal resolver
func NewJWTResolver(config JWTConfig) *JWTResolver {
	return &JWTResolver{config: config}
}

type principalClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Resolve validates the token signature and claims and extracts the principal
func (r *JWTResolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrNotAuthenticated()
	}

	claims := &principalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(r.config.SecretKey), nil
	}, jwt.WithIssuer(r.config.Issuer))
	if err != nil || !parsed.Valid {
		return nil, ErrNotAuthenticated()
	}

	if claims.Subject == "" {
		return nil, ErrNotAuthenticated()
	}

	name := claims.Name
	if name == "" {
		name = claims.Subject
	}

	return &Principal{ID: claims.Subject, Name: name}, nil
}
