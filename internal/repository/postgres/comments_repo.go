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

type commentsRepo struct{ pool *pgxpool.Pool }

func (r *commentsRepo) Create(ctx context.Context, content string, userID, postID int64) (models.Comment, error) {
	query, args, err := psql.Insert("comments").
		Columns("content", "user_id", "post_id").
		Values(content, userID, postID).
		Suffix("RETURNING id, content, user_id, post_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Comment{}, err
	}
	c, err := scanComment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Comment{}, fmt.Errorf("comments: create: %w", err)
	}
	return c, nil
}

func (r *commentsRepo) GetByID(ctx context.Context, id int64) (models.Comment, error) {
	query, args, err := psql.Select("id", "content", "user_id", "post_id", "created_at", "updated_at").
		From("comments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Comment{}, err
	}
	c, err := scanComment(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Comment{}, repo.ErrNotFound
	}
	return c, err
}

// ListByPost returns a post's comments, each carrying its author's
// id and username.
func (r *commentsRepo) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return queryComments(ctx, r.pool, sq.Eq{"c.post_id": postID})
}

func (r *commentsRepo) Update(ctx context.Context, id int64, content string) (models.Comment, error) {
	query, args, err := psql.Update("comments").
		Set("content", content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, content, user_id, post_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Comment{}, err
	}
	c, err := scanComment(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Comment{}, repo.ErrNotFound
	}
	return c, err
}

func (r *commentsRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("comments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// queryComments is shared with the posts repository, which attaches
// comments when listing posts with associations.
func queryComments(ctx context.Context, pool *pgxpool.Pool, pred sq.Eq) ([]models.Comment, error) {
	query, args, err := psql.Select(
		"c.id", "c.content", "c.user_id", "c.post_id", "c.created_at", "c.updated_at",
		"u.id", "u.username",
	).From("comments c").Join("users u ON u.id = c.user_id").
		Where(pred).OrderBy("c.created_at ASC").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		var author models.Author
		if err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt,
			&author.ID, &author.Username); err != nil {
			return nil, err
		}
		c.User = &author
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanComment(row pgx.Row) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Content, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
