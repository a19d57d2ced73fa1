package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, staff_id, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, password_hash, role, staff_id, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash, string(u.Role), u.StaffID).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.StaffID,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role, staff_id, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var result user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.StaffID,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}
