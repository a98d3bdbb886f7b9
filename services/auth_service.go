package services

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

// AuthServiceInterface resolves a bearer token to a stable user identifier.
// The identity provider is external; this service only verifies what it
// issued and never stores credentials itself.
type AuthServiceInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// HMACAuthService validates tokens signed with the provider's shared HS256
// secret. Providers like Supabase expose this secret for server-side checks,
// which avoids a network round trip per request.
type HMACAuthService struct {
	secret []byte
}

func NewHMACAuthService(secret string) *HMACAuthService {
	return &HMACAuthService{secret: []byte(secret)}
}

func (s *HMACAuthService) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// OIDCAuthService validates tokens against the provider's published JWKS,
// discovered from the issuer URL at startup.
type OIDCAuthService struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCAuthService(ctx context.Context, issuerURL, audience string) (*OIDCAuthService, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider %s: %w", issuerURL, err)
	}

	oidcConfig := &oidc.Config{ClientID: audience}
	if audience == "" {
		oidcConfig.SkipClientIDCheck = true
	}

	return &OIDCAuthService{verifier: provider.Verifier(oidcConfig)}, nil
}

func (s *OIDCAuthService) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	idToken, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	if idToken.Subject == "" {
		return "", ErrInvalidToken
	}
	return idToken.Subject, nil
}
