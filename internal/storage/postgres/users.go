package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
)

const userColumns = `id, name, email, password_hash, role, is_verified, verify_token, verify_expires, reset_token, reset_expires, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u             model.User
		verifyToken   *string
		verifyExpires *time.Time
		resetToken    *string
		resetExpires  *time.Time
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsVerified,
		&verifyToken, &verifyExpires, &resetToken, &resetExpires, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if verifyToken != nil {
		u.VerifyToken = *verifyToken
	}
	u.VerifyExpires = verifyExpires
	if resetToken != nil {
		u.ResetToken = *resetToken
	}
	u.ResetExpires = resetExpires
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole, verifyToken string, verifyExpires time.Time) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role, verify_token, verify_expires)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, role, verifyToken, verifyExpires).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	u.VerifyToken = verifyToken
	expires := verifyExpires
	u.VerifyExpires = &expires
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

// VerifyByToken is a no-op for expired tokens: the WHERE clause only matches
// unexpired ones, so those surface as not found.
func (r *userRepository) VerifyByToken(ctx context.Context, token string) (*model.User, error) {
	const query = `UPDATE users
                   SET is_verified=TRUE, verify_token=NULL, verify_expires=NULL
                   WHERE verify_token=$1 AND verify_expires > NOW()
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, token))
}

func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	const query = `UPDATE users SET reset_token=$2, reset_expires=$3 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, token, expires)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) ResetPassword(ctx context.Context, token, passwordHash string) (*model.User, error) {
	const query = `UPDATE users
                   SET password_hash=$2, reset_token=NULL, reset_expires=NULL
                   WHERE reset_token=$1 AND reset_expires > NOW()
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, token, passwordHash))
}
