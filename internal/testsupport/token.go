package testsupport

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/config"
)

// SignToken issues a bearer token for gymID that the auth middleware accepts.
func SignToken(t *testing.T, cfg *config.Config, gymID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":    "staff-" + gymID[:8],
		"gym_id": gymID,
		"role":   role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	if cfg.JWT.Issuer != "" {
		claims["iss"] = cfg.JWT.Issuer
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)
	return tok
}
