package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = Config{Secret: "test-secret", Issuer: "gym-saas"}

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":    "staff-1",
		"gym_id": "gym-1",
		"role":   RoleOwner,
		"iss":    "gym-saas",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
}

func TestParseToken_Valid(t *testing.T) {
	claims, err := ParseToken(sign(t, baseClaims(), testCfg.Secret), testCfg)
	require.NoError(t, err)

	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "gym-1", claims.GymID)
	assert.Equal(t, RoleOwner, claims.Role)
}

func TestParseToken_DefaultsToStaff(t *testing.T) {
	c := baseClaims()
	delete(c, "role")

	claims, err := ParseToken(sign(t, c, testCfg.Secret), testCfg)
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, claims.Role)
}

func TestParseToken_Rejects(t *testing.T) {
	expired := baseClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noGym := baseClaims()
	delete(noGym, "gym_id")

	wrongIssuer := baseClaims()
	wrongIssuer["iss"] = "someone-else"

	badRole := baseClaims()
	badRole["role"] = "root"

	tests := map[string]string{
		"expired":      sign(t, expired, testCfg.Secret),
		"no gym":       sign(t, noGym, testCfg.Secret),
		"wrong issuer": sign(t, wrongIssuer, testCfg.Secret),
		"bad role":     sign(t, badRole, testCfg.Secret),
		"wrong secret": sign(t, baseClaims(), "other"),
		"garbage":      "not-a-token",
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tok, testCfg)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err := ParseToken("  ", testCfg)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClaimsContext(t *testing.T) {
	ctx := WithClaims(context.Background(), &Claims{GymID: "g"})
	claims, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "g", claims.GymID)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestPermissions(t *testing.T) {
	assert.True(t, HasPermission(RoleOwner, PermPlansWrite))
	assert.False(t, HasPermission(RoleStaff, PermPlansWrite))
	assert.True(t, CanPerformAction(&Claims{Role: RoleStaff}, PermPaymentsWrite))
	assert.False(t, CanPerformAction(nil, PermPaymentsWrite))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
}
