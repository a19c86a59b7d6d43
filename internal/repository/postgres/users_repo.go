package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

var userColumns = []string{"id", "username", "email", "password_hash", "role_id", "created_at", "updated_at"}

func (r *usersRepo) Create(ctx context.Context, username, email, passwordHash string, roleID int64) (models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("username", "email", "password_hash", "role_id").
		Values(username, email, passwordHash, roleID).
		Suffix("RETURNING id, username, email, password_hash, role_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.User{}, err
	}
	u, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, repo.ErrDuplicate
		}
		return models.User{}, fmt.Errorf("users: create: %w", err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

func (r *usersRepo) getBy(ctx context.Context, pred sq.Eq) (models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(pred).ToSql()
	if err != nil {
		return models.User{}, err
	}
	u, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repo.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query, args, err := psql.Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("users: update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *usersRepo) scanOne(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
