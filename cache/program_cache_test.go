package program_cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramCache(t *testing.T) {
	tenantID := uuid.Must(uuid.NewV7())
	key := tenantID.String()
	program := models.DefaultProgram(tenantID)

	t.Run("miss before set", func(t *testing.T) {
		_, ok := Get(key)
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		Set(key, program)

		got, ok := Get(key)
		require.True(t, ok)
		assert.Equal(t, program.TenantID, got.TenantID)
		assert.Equal(t, float64(models.DefaultPointsPerDollar), got.PointsPerDollar)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		Set(key, program)
		Invalidate(key)

		_, ok := Get(key)
		assert.False(t, ok)
	})

	t.Run("tenants do not collide", func(t *testing.T) {
		otherID := uuid.Must(uuid.NewV7())
		other := models.DefaultProgram(otherID)
		other.PointsPerDollar = 5

		Set(key, program)
		Set(otherID.String(), other)

		got, ok := Get(otherID.String())
		require.True(t, ok)
		assert.Equal(t, 5.0, got.PointsPerDollar)

		got, ok = Get(key)
		require.True(t, ok)
		assert.Equal(t, float64(models.DefaultPointsPerDollar), got.PointsPerDollar)
	})
}
