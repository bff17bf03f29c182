package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is a verified caller resolved from a bearer token.
type Identity struct {
	ID    string
	Email string
}

// VerifierConfig holds configuration for the JWT verifier
type VerifierConfig struct {
	// Secret is the shared HMAC signing secret of the auth provider.
	Secret string
	// Issuer, when set, is matched against the token's iss claim.
	Issuer string
}

// Validate checks that the configuration is usable
func (c VerifierConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}
	return nil
}

// JWTVerifier verifies HS256 bearer tokens issued by the auth provider
// and resolves them to a caller identity.
type JWTVerifier struct {
	config VerifierConfig
}

// NewJWTVerifier creates a new JWT verifier instance
func NewJWTVerifier(config VerifierConfig) (*JWTVerifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &JWTVerifier{config: config}, nil
}

// Verify parses and verifies a token string and returns the caller identity.
// Any failure (bad signature, expiry, wrong issuer, missing subject) yields an
// error; callers must not differentiate between the failure modes.
func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if v.config.Issuer != "" {
		iss, ok := claims["iss"].(string)
		if !ok || iss != v.config.Issuer {
			return nil, fmt.Errorf("invalid issuer")
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("subject (sub) claim is missing")
	}

	identity := &Identity{ID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
