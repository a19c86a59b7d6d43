package postgres

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds every query in this package with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repositories struct {
	Users    repo.Users
	Roles    repo.Roles
	Posts    repo.Posts
	Comments repo.Comments
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    &usersRepo{pool},
		Roles:    &rolesRepo{pool},
		Posts:    &postsRepo{pool},
		Comments: &commentsRepo{pool},
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
