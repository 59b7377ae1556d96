package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/reveda-health/reveda-server/services/auth UserRepo

// UserRepo represents the identity store interface. All operations are
// atomic at the single-row level only.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)

	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
	SeedDefaultRoles(ctx context.Context) error
}
