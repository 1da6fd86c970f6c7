// Package auth resolves bearer tokens to bridge identities and holds the
// role permission table.
package auth

import (
	"context"
	"fmt"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Claims is the identity resolved from a verified access token.
type Claims struct {
	AgentID     string
	WorkspaceID string
	Role        string
	SessionID   string
	JWTID       string
}

// Verifier resolves a raw bearer token to claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Config for the JWKS-backed verifier.
type Config struct {
	Issuer   string
	Audience string
	JWKSURL  string
}

// JWKSVerifier validates token signatures against a cached remote JWKS and
// checks issuer/audience before extracting the bridge claims.
type JWKSVerifier struct {
	cfg   Config
	cache *jwk.Cache
}

// NewJWKSVerifier builds a verifier and registers the JWKS endpoint with the
// background refresh cache.
func NewJWKSVerifier(ctx context.Context, cfg Config) (*JWKSVerifier, error) {
	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("jwks url is required")
	}

	cache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create jwks cache: %w", err)
	}
	if err := cache.Register(ctx, cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("failed to register jwks endpoint: %w", err)
	}

	return &JWKSVerifier{cfg: cfg, cache: cache}, nil
}

// Verify parses and validates the token, then extracts the bridge claims.
func (v *JWKSVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	set, err := v.cache.Lookup(ctx, v.cfg.JWKSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jwks: %w", err)
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	tok, err := jwt.Parse([]byte(token), opts...)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	return claimsFromToken(tok)
}

func claimsFromToken(tok jwt.Token) (*Claims, error) {
	claims := &Claims{}

	if err := tok.Get("agent_id", &claims.AgentID); err != nil || claims.AgentID == "" {
		// Fall back to the standard subject claim.
		if serr := tok.Get(jwt.SubjectKey, &claims.AgentID); serr != nil || claims.AgentID == "" {
			return nil, fmt.Errorf("token carries no agent identity")
		}
	}
	if err := tok.Get("workspace_id", &claims.WorkspaceID); err != nil || claims.WorkspaceID == "" {
		return nil, fmt.Errorf("token carries no workspace_id")
	}
	if err := tok.Get("role", &claims.Role); err != nil || claims.Role == "" {
		return nil, fmt.Errorf("token carries no role")
	}
	if !ValidRole(claims.Role) {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	// Optional claims.
	_ = tok.Get("session_id", &claims.SessionID)
	_ = tok.Get(jwt.JwtIDKey, &claims.JWTID)

	return claims, nil
}
