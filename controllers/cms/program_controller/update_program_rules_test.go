package program_controller

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProgramForUpdate(t *testing.T) {
	tenantID := uuid.Must(uuid.NewV7())

	t.Run("missing row starts from the tenant defaults", func(t *testing.T) {
		program, err := programForUpdate(models.Program{}, gorm.ErrRecordNotFound, tenantID.String())

		require.NoError(t, err)
		assert.Equal(t, tenantID, program.TenantID)
		// A first write through PUT must match what a first read creates
		assert.Equal(t, models.DefaultProgramName, program.Name)
		assert.Equal(t, float64(models.DefaultPointsPerDollar), program.PointsPerDollar)
	})

	t.Run("existing row is kept", func(t *testing.T) {
		existing := models.DefaultProgram(tenantID)
		existing.ID = uuid.Must(uuid.NewV7())
		existing.PointsPerDollar = 3

		program, err := programForUpdate(existing, nil, tenantID.String())

		require.NoError(t, err)
		assert.Equal(t, existing.ID, program.ID)
		assert.Equal(t, 3.0, program.PointsPerDollar)
	})

	t.Run("other lookup errors propagate", func(t *testing.T) {
		dbErr := errors.New("connection reset")

		_, err := programForUpdate(models.Program{}, dbErr, tenantID.String())

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestApplyProgramRules(t *testing.T) {
	tenantID := uuid.Must(uuid.NewV7())
	program := models.DefaultProgram(tenantID)

	applyProgramRules(&program, models.ProgramRulesRequest{
		PointsPerDollar:     4.5,
		BirthdayBonus:       500,
		CheckInBonusPoints:  75,
		CheckInRadiusMeters: 200,
		TenantID:            tenantID.String(),
	})

	assert.Equal(t, 4.5, program.PointsPerDollar)
	assert.Equal(t, 500, program.BirthdayBonus)
	assert.Equal(t, 75, program.CheckInBonusPoints)
	assert.Equal(t, 200, program.CheckInRadiusMeters)
	// Name is not client-writable
	assert.Equal(t, models.DefaultProgramName, program.Name)
	assert.Equal(t, tenantID, program.TenantID)
}
