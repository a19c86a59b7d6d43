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

type postsRepo struct{ pool *pgxpool.Pool }

func (r *postsRepo) Create(ctx context.Context, title, content string, userID int64) (models.Post, error) {
	query, args, err := psql.Insert("posts").
		Columns("title", "content", "user_id").
		Values(title, content, userID).
		Suffix("RETURNING id, title, content, user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Post{}, err
	}
	p, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("posts: create: %w", err)
	}
	return p, nil
}

func (r *postsRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	query, args, err := psql.Select("id", "title", "content", "user_id", "created_at", "updated_at").
		From("posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Post{}, err
	}
	p, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, repo.ErrNotFound
	}
	return p, err
}

// GetWithAssociations loads one post together with its author and its
// comments (each with their author), mirroring the list endpoint shape.
func (r *postsRepo) GetWithAssociations(ctx context.Context, id int64) (models.Post, error) {
	posts, err := r.listWithAssociations(ctx, sq.Eq{"p.id": id})
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, repo.ErrNotFound
	}
	return posts[0], nil
}

func (r *postsRepo) ListWithAssociations(ctx context.Context) ([]models.Post, error) {
	return r.listWithAssociations(ctx, nil)
}

func (r *postsRepo) listWithAssociations(ctx context.Context, pred any) ([]models.Post, error) {
	b := psql.Select(
		"p.id", "p.title", "p.content", "p.user_id", "p.created_at", "p.updated_at",
		"u.id", "u.username", "u.email",
	).From("posts p").Join("users u ON u.id = p.user_id").OrderBy("p.created_at DESC")
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	var ids []int64
	for rows.Next() {
		var p models.Post
		var author models.Author
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
			&author.ID, &author.Username, &author.Email); err != nil {
			return nil, err
		}
		p.User = &author
		p.Comments = []models.Comment{}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	comments, err := queryComments(ctx, r.pool, sq.Eq{"c.post_id": ids})
	if err != nil {
		return nil, err
	}
	byPost := make(map[int64][]models.Comment, len(posts))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	for i := range posts {
		if cs, ok := byPost[posts[i].ID]; ok {
			posts[i].Comments = cs
		}
	}
	return posts, nil
}

func (r *postsRepo) Update(ctx context.Context, id int64, title, content string) (models.Post, error) {
	query, args, err := psql.Update("posts").
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, content, user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Post{}, err
	}
	p, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, repo.ErrNotFound
	}
	return p, err
}

func (r *postsRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("posts").Where(sq.Eq{"id": id}).ToSql()
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

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
