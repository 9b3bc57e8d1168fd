package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"

	"travelrec/internal/config"
)

// AdminSubjectKey is the Locals key holding the verified admin subject.
const AdminSubjectKey = "admin_subject"

// TokenVerifier verifies a raw OIDC ID token.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

// AdminAuth guards the admin API with OIDC bearer tokens.
type AdminAuth struct {
	verifier TokenVerifier
}

// NewAdminAuth discovers the issuer and builds a verifier for the configured audience.
func NewAdminAuth(ctx context.Context, cfg *config.Config) (*AdminAuth, error) {
	provider, err := oidc.NewProvider(ctx, cfg.AdminOIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC issuer: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.AdminOIDCAudience})
	return NewAdminAuthWithVerifier(verifier), nil
}

// NewAdminAuthWithVerifier creates the middleware around an existing verifier.
func NewAdminAuthWithVerifier(verifier TokenVerifier) *AdminAuth {
	return &AdminAuth{verifier: verifier}
}

// RequireAdmin rejects requests without a valid bearer token.
func (m *AdminAuth) RequireAdmin(c fiber.Ctx) error {
	raw := bearerToken(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return unauthorized(c, "missing bearer token")
	}

	token, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		return unauthorized(c, "invalid bearer token")
	}

	c.Locals(AdminSubjectKey, token.Subject)
	return c.Next()
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(c fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="admin"`)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
