package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := "SELECT id, email, name, encrypted_password, created_at, updated_at FROM users WHERE email = $1 LIMIT 1"

	var user domain.User

	err := ur.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}

	if err != nil {
		slog.Error("Error getting user by email", "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	now := time.Now()

	query := "INSERT INTO users (email, name, encrypted_password, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id"

	err := ur.db.QueryRow(ctx, query, user.Email, user.Name, user.EncryptedPassword, now, now).
		Scan(&user.ID)

	if err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	user.CreatedAt = now
	user.UpdatedAt = now

	return user, nil
}
