package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type rolesRepo struct{ pool *pgxpool.Pool }

func (r *rolesRepo) GetByID(ctx context.Context, id int64) (models.Role, error) {
	query, args, err := psql.Select("id", "name", "created_at").
		From("roles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Role{}, err
	}
	var role models.Role
	err = r.pool.QueryRow(ctx, query, args...).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Role{}, repo.ErrNotFound
	}
	return role, err
}
