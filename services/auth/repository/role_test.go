package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

func TestGetRoleByName(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	roleID := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM roles").
		WithArgs(models.RolePatient).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_at", "updated_at"}).
			AddRow(roleID, models.RolePatient, "patient", nil, now, now))

	role, err := repo.GetRoleByName(context.Background(), models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, roleID, role.ID)
	assert.Equal(t, models.RolePatient, role.Name)
}

func TestGetRoleByName_NotSeeded(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM roles").
		WithArgs(models.RoleDoctor).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRoleByName(context.Background(), models.RoleDoctor)
	assert.ErrorIs(t, err, apperrors.ErrRoleNotSeeded)
}

func TestSeedDefaultRoles(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	// One idempotent insert per default role.
	for range []string{models.RolePatient, models.RoleDoctor, models.RoleAdmin, models.RoleMarketing} {
		mock.ExpectExec("INSERT INTO roles").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	err := repo.SeedDefaultRoles(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
