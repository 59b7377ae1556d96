package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/reveda-health/reveda-server/internal/pkg/apperrors"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	"github.com/reveda-health/reveda-server/internal/utils"
)

const userColumns = `
	u.id, u.first_name, u.last_name, u.email, u.phone_number,
	u.profile_picture, u.password_hash, u.is_verified, u.otp_code,
	u.otp_expires_at, u.role_id, u.google_id, u.created_at, u.updated_at,
	r.name AS role_name
`

// CreateUser creates a new user in the database. The plaintext Password
// field, when set, is hashed before persisting and never stored as-is.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = utils.NormalizeEmail(user.Email)

	if user.Password != "" {
		hash, err := utils.HashPassword(user.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = &hash
		user.Password = ""
	}

	query := `
		INSERT INTO users (id, first_name, last_name, email, phone_number,
			profile_picture, password_hash, is_verified, otp_code,
			otp_expires_at, role_id, google_id, created_at, updated_at
		) VALUES (:id, :first_name, :last_name, :email, :phone_number,
			:profile_picture, :password_hash, :is_verified, :otp_code,
			:otp_expires_at, :role_id, :google_id, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`
	return r.getUser(ctx, query, id)
}

// GetUserByEmail retrieves a user by case-normalized email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
	`
	return r.getUser(ctx, query, utils.NormalizeEmail(email))
}

// GetUserByEmailOrPhone retrieves a user matching either contact channel
func (r *UserRepo) GetUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1 OR u.phone_number = $1
	`
	return r.getUser(ctx, query, utils.NormalizeIdentifier(identifier))
}

// UpdateUser writes back the mutable field-set of a user record. The
// update is a single statement, so concurrent writers are last-write-wins
// per field-set without torn rows.
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users SET
			first_name = :first_name,
			last_name = :last_name,
			phone_number = :phone_number,
			profile_picture = :profile_picture,
			password_hash = :password_hash,
			is_verified = :is_verified,
			otp_code = :otp_code,
			otp_expires_at = :otp_expires_at,
			google_id = :google_id,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user record. Used as the compensating action when
// OTP delivery fails during signup.
func (r *UserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ExistsByEmailOrPhone reports whether a user exists with the given email
// or, when a phone number is supplied, that phone number.
func (r *UserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 OR ($2 <> '' AND phone_number = $2)
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, utils.NormalizeEmail(email), phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
