package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	tenantID := uuid.Must(uuid.NewV7())

	token, err := GenerateJWT(userID, "admin@coffeeshop.com", "Shop Admin", "admin", tenantID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin@coffeeshop.com", claims.Email)
	assert.Equal(t, "Shop Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, "loyaltai-api", claims.Issuer)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.com", "A", "customer", uuid.Must(uuid.NewV7()))
	assert.Error(t, err)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.com", "A", "customer", uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "other-secret")
		_, err := ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("truncated token", func(t *testing.T) {
		_, err := ValidateJWT(token[:len(token)-5])
		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Basic abc", "Bearer ", "abc.def.ghi"} {
		_, err := ExtractTokenFromHeader(header)
		assert.Error(t, err, "header %q should be rejected", header)
	}
}
