package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

// GetRoleByName retrieves a role by its name. A missing role is a
// deployment precondition failure, not a user error.
func (r *UserRepo) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.GetContext(ctx, &role, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoleNotSeeded
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}

// SeedDefaultRoles inserts the default roles if absent. Idempotent; runs
// once at process start.
func (r *UserRepo) SeedDefaultRoles(ctx context.Context) error {
	names := []string{
		models.RolePatient,
		models.RoleDoctor,
		models.RoleAdmin,
		models.RoleMarketing,
	}

	query := `
		INSERT INTO roles (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (name) DO NOTHING
	`

	now := time.Now()
	for _, name := range names {
		if _, err := r.db.ExecContext(ctx, query, uuid.New(), name, strings.ToLower(name), now); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}

	return nil
}
