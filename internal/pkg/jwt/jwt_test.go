package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "comp-1", user.RoleOwner, nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	employeeID, companyID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
	assert.Equal(t, "comp-1", companyID)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")

	_, _, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("another-secret-entirely", "1h")

	token, _, err := svc.GenerateAccessToken("emp-1", "comp-1", user.RoleEmployee, nil)
	require.NoError(t, err)

	_, _, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestSubscriptionClaimsRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")
	expires := time.Now().Add(30 * 24 * time.Hour)

	token, _, err := svc.GenerateAccessToken("emp-1", "comp-1", user.RoleOwner, &SubscriptionClaims{
		Features:              []string{"time_tracking", "attendance_overview"},
		SubscriptionExpiresAt: &expires,
	})
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	features, ok := decoded.Get("features")
	require.True(t, ok)
	assert.Len(t, features, 2)

	expUnix, ok := decoded.Get("subscription_expires_at")
	require.True(t, ok)
	assert.NotNil(t, expUnix)
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAccessToken("emp-1", "comp-1", user.RoleManager, nil)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	// Revocation is per token string, validation itself still succeeds.
	_, _, err = svc.ValidateAccessToken(token)
	assert.NoError(t, err)
}
