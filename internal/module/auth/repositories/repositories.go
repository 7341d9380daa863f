package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stall-booking-service/internal/module/auth/models/entity"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// db
	CreateUser(ctx context.Context, user *entity.User) error
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindUserByID(ctx context.Context, userID string) (entity.User, error)
	UpdateUserProfile(ctx context.Context, user *entity.User) error
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	// redis
	StoreResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	PeekResetToken(ctx context.Context, token string) (string, error)
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

func New(db *sqlx.DB, logger log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         logger,
		redisClient: redisClient,
	}
}

func (r *repositories) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, name, shop_name, shop_description, phone, email, password_hash, role)
		VALUES (:id, :name, :shop_name, :shop_description, :phone, :email, :password_hash, :role)
	`, user)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.Conflict("email is already registered")
		}
		return errors.InternalServerError("error create user")
	}
	return nil
}

// FindUserByEmail matches case-insensitively; the unique index on
// lower(email) guarantees at most one row.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE lower(email) = lower($1)`, email)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

func (r *repositories) FindUserByID(ctx context.Context, userID string) (entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}

func (r *repositories) UpdateUserProfile(ctx context.Context, user *entity.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE users
		SET name = :name,
		    shop_name = :shop_name,
		    shop_description = :shop_description,
		    phone = :phone,
		    updated_at = now()
		WHERE id = :id
	`, user)
	if err != nil {
		return errors.InternalServerError("error update user profile")
	}
	return nil
}

func (r *repositories) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return errors.InternalServerError("error update user password")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update user password")
	}
	if affected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

func resetKey(token string) string {
	return fmt.Sprintf("reset:token:%s", token)
}

func (r *repositories) StoreResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, resetKey(token), userID, ttl).Err(); err != nil {
		return errors.InternalServerError("error store reset token")
	}
	return nil
}

// PeekResetToken checks a token without consuming it, so the reset form
// can be validated before the user types a new password.
func (r *repositories) PeekResetToken(ctx context.Context, token string) (string, error) {
	userID, err := r.redisClient.Get(ctx, resetKey(token)).Result()
	if err == redis.Nil {
		return "", errors.BadRequest("reset token is invalid or expired")
	}
	if err != nil {
		return "", errors.InternalServerError("error read reset token")
	}
	return userID, nil
}

// ConsumeResetToken atomically reads and deletes the token. A token can
// complete at most one password change.
func (r *repositories) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := r.redisClient.GetDel(ctx, resetKey(token)).Result()
	if err == redis.Nil {
		return "", errors.BadRequest("reset token is invalid or expired")
	}
	if err != nil {
		return "", errors.InternalServerError("error consume reset token")
	}
	return userID, nil
}
